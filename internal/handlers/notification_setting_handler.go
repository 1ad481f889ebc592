package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
)

// NotificationSettingHandler handles HTTP requests related to notification
// preferences
type NotificationSettingHandler struct {
	settingRepository repositories.NotificationSettingRepository
}

// NewNotificationSettingHandler creates a new NotificationSettingHandler
func NewNotificationSettingHandler(settingRepo repositories.NotificationSettingRepository) *NotificationSettingHandler {
	return &NotificationSettingHandler{settingRepository: settingRepo}
}

// RegisterNotificationSettingRoutes registers notification-setting routes
func (h *NotificationSettingHandler) RegisterNotificationSettingRoutes(g *echo.Group) {
	g.GET("/notification-settings", h.GetSettings)
	g.PUT("/notification-settings", h.UpdateSettings)
}

// GetSettings returns the authenticated user's notification preferences. A
// user without a stored document gets the defaults (everything enabled).
func (h *NotificationSettingHandler) GetSettings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	setting, err := h.settingRepository.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if setting == nil {
		setting = &models.NotificationSetting{
			UserID:         userID,
			FriendRequests: true,
			Comments:       true,
			Mentions:       true,
			Tips:           true,
		}
	}

	return c.JSON(http.StatusOK, setting)
}

// UpdateSettings upserts the authenticated user's notification preferences.
// Omitted toggles keep their current (or default) value.
func (h *NotificationSettingHandler) UpdateSettings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.UpdateNotificationSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	setting, err := h.settingRepository.GetByUserID(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if setting == nil {
		setting = &models.NotificationSetting{
			UserID:         userID,
			FriendRequests: true,
			Comments:       true,
			Mentions:       true,
			Tips:           true,
		}
	}

	if req.FriendRequests != nil {
		setting.FriendRequests = *req.FriendRequests
	}
	if req.Comments != nil {
		setting.Comments = *req.Comments
	}
	if req.Mentions != nil {
		setting.Mentions = *req.Mentions
	}
	if req.Tips != nil {
		setting.Tips = *req.Tips
	}

	if err := h.settingRepository.Upsert(ctx, setting); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, setting)
}
