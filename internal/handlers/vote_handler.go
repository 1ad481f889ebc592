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

// VoteHandler handles HTTP requests related to votes
type VoteHandler struct {
	voteRepository repositories.VoteRepository
	notifications  *notification.Service
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(voteRepo repositories.VoteRepository, notifications *notification.Service) *VoteHandler {
	return &VoteHandler{voteRepository: voteRepo, notifications: notifications}
}

// RegisterVoteRoutes registers vote-related routes
func (h *VoteHandler) RegisterVoteRoutes(g *echo.Group) {
	g.POST("/votes", h.CastVote)
	g.DELETE("/votes/:id", h.DeleteVote)
}

// CastVote casts or flips a vote on a post or comment and notifies the
// author. Notification failures do not fail the request.
func (h *VoteHandler) CastVote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateVoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := h.voteRepository.GetVoteByUserAndReference(ctx, userID, req.ReferenceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "Vote already cast")
	}

	vote := &models.Vote{
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
		PostID:      req.PostID,
		UserID:      userID,
		State:       *req.State,
	}

	if err := h.voteRepository.CreateVote(ctx, vote); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.notifications.SendPostVote(ctx, userID, vote); err != nil {
		logger.For(ctx).WithError(err).Warn("vote notification failed")
	}

	return c.JSON(http.StatusCreated, vote)
}

// DeleteVote retracts a vote cast by the authenticated user
func (h *VoteHandler) DeleteVote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	vote, err := h.voteRepository.GetVoteByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Vote not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if vote.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the vote owner")
	}

	if err := h.voteRepository.DeleteVote(ctx, vote.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
