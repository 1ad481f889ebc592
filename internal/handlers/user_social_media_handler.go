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

// UserSocialMediaHandler handles HTTP requests related to social-media links
type UserSocialMediaHandler struct {
	usmRepository    repositories.UserSocialMediaRepository
	peopleRepository repositories.PeopleRepository
	notifications    *notification.Service
}

// NewUserSocialMediaHandler creates a new UserSocialMediaHandler
func NewUserSocialMediaHandler(usmRepo repositories.UserSocialMediaRepository, peopleRepo repositories.PeopleRepository, notifications *notification.Service) *UserSocialMediaHandler {
	return &UserSocialMediaHandler{
		usmRepository:    usmRepo,
		peopleRepository: peopleRepo,
		notifications:    notifications,
	}
}

// RegisterUserSocialMediaRoutes registers social-media link routes
func (h *UserSocialMediaHandler) RegisterUserSocialMediaRoutes(g *echo.Group) {
	g.POST("/user-social-medias", h.Connect)
	g.GET("/user-social-medias", h.GetConnections)
	g.DELETE("/user-social-medias/:id", h.Disconnect)
}

// Connect claims an external identity for the authenticated user and
// notifies them. An identity can only be claimed once.
func (h *UserSocialMediaHandler) Connect(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateUserSocialMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.peopleRepository.GetPeopleByID(ctx, req.PeopleID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "External identity not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	existing, err := h.usmRepository.GetUserSocialMediaByPeopleID(ctx, req.PeopleID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "Identity already claimed")
	}

	usm := &models.UserSocialMedia{
		UserID:   userID,
		Platform: req.Platform,
		PeopleID: req.PeopleID,
		Verified: true,
	}

	if err := h.usmRepository.CreateUserSocialMedia(ctx, usm); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.notifications.SendConnectedSocialMedia(ctx, usm); err != nil {
		logger.For(ctx).WithError(err).Warn("connect notification failed")
	}

	return c.JSON(http.StatusCreated, usm)
}

// GetConnections retrieves the authenticated user's social-media links
func (h *UserSocialMediaHandler) GetConnections(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	usms, err := h.usmRepository.GetUserSocialMediaByUserID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, usms)
}

// Disconnect removes a social-media link owned by the authenticated user and
// notifies the owner. The notification is sent before deletion so the link's
// people id can still be resolved.
func (h *UserSocialMediaHandler) Disconnect(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	usm, err := h.usmRepository.GetUserSocialMediaByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Social media link not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if usm.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the link owner")
	}

	if _, err := h.notifications.SendDisconnectedSocialMedia(ctx, usm.ID, ""); err != nil {
		logger.For(ctx).WithError(err).Warn("disconnect notification failed")
	}

	if err := h.usmRepository.DeleteUserSocialMedia(ctx, usm.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
