package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/raihankalla/myriad-backend/internal/services/notification"
	"github.com/raihankalla/myriad-backend/pkg/logger"
)

// FriendHandler handles HTTP requests related to friend relationships
type FriendHandler struct {
	friendRepository repositories.FriendRepository
	userRepository   repositories.UserRepository
	notifications    *notification.Service
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friendRepo repositories.FriendRepository, userRepo repositories.UserRepository, notifications *notification.Service) *FriendHandler {
	return &FriendHandler{
		friendRepository: friendRepo,
		userRepository:   userRepo,
		notifications:    notifications,
	}
}

// RegisterFriendRoutes registers friend-related routes
func (h *FriendHandler) RegisterFriendRoutes(g *echo.Group) {
	g.POST("/friends", h.SendRequest)
	g.GET("/friends", h.GetFriends)
	g.PATCH("/friends/:id", h.AcceptRequest)
	g.DELETE("/friends/:id", h.RemoveFriend)
}

// SendRequest sends a friend request to another user and notifies them
func (h *FriendHandler) SendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.RequesteeID == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot befriend yourself")
	}

	ctx := c.Request().Context()
	if _, err := h.userRepository.GetUserByID(ctx, req.RequesteeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	existing, err := h.friendRepository.GetFriendByUsers(ctx, userID, req.RequesteeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "Friend relationship already exists")
	}

	friend := &models.Friend{
		RequestorID: userID,
		RequesteeID: req.RequesteeID,
		Status:      models.FriendStatusPending,
	}

	if err := h.friendRepository.CreateFriend(ctx, friend); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.notifications.SendFriendRequest(ctx, userID, req.RequesteeID); err != nil {
		logger.For(ctx).WithError(err).Warn("friend request notification failed")
	}

	return c.JSON(http.StatusCreated, friend)
}

// GetFriends retrieves the authenticated user's friends, filtered by status
func (h *FriendHandler) GetFriends(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	status := models.FriendStatus(c.QueryParam("status"))
	if status == "" {
		status = models.FriendStatusApproved
	}

	friends, err := h.friendRepository.GetFriendsByUserID(c.Request().Context(), userID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, friends)
}

// AcceptRequest approves a pending friend request addressed to the
// authenticated user and notifies the requestor
func (h *FriendHandler) AcceptRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	friend, err := h.friendRepository.GetFriendByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Friend request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if friend.RequesteeID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the requestee")
	}
	if friend.Status != models.FriendStatusPending {
		return echo.NewHTTPError(http.StatusConflict, "Request already handled")
	}

	if err := h.friendRepository.UpdateFriendStatus(ctx, friend.ID, models.FriendStatusApproved); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.notifications.SendFriendAccept(ctx, userID, friend.RequestorID); err != nil {
		logger.For(ctx).WithError(err).Warn("friend accept notification failed")
	}

	friend.Status = models.FriendStatusApproved
	return c.JSON(http.StatusOK, friend)
}

// RemoveFriend deletes a friend relationship. Retracting a still-pending
// request also retracts its notification.
func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	friend, err := h.friendRepository.GetFriendByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Friend relationship not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if friend.RequestorID != userID && friend.RequesteeID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not part of this relationship")
	}

	if err := h.friendRepository.DeleteFriend(ctx, friend.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if friend.Status == models.FriendStatusPending && friend.RequestorID == userID {
		if err := h.notifications.CancelFriendRequest(ctx, friend.RequestorID, friend.RequesteeID); err != nil {
			logger.For(ctx).WithError(err).Warn("friend request retraction failed")
		}
	}

	return c.NoContent(http.StatusNoContent)
}
