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

// ReportHandler handles HTTP requests related to moderation reports
type ReportHandler struct {
	reportRepository     repositories.ReportRepository
	userReportRepository repositories.UserReportRepository
	notifications        *notification.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportRepo repositories.ReportRepository, userReportRepo repositories.UserReportRepository, notifications *notification.Service) *ReportHandler {
	return &ReportHandler{
		reportRepository:     reportRepo,
		userReportRepository: userReportRepo,
		notifications:        notifications,
	}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/reports", h.FileReport)
	g.GET("/reports/:id", h.GetReport)
	g.PATCH("/reports/:id", h.UpdateReport)
}

// FileReport files a report against a user, post or comment. Repeat reports
// of the same subject attach the reporter to the existing report.
func (h *ReportHandler) FileReport(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	report, err := h.reportRepository.GetReportByReference(ctx, req.ReferenceType, req.ReferenceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if report == nil {
		report = &models.Report{
			ReferenceType: req.ReferenceType,
			ReferenceID:   req.ReferenceID,
			Reason:        req.Reason,
		}
		if err := h.reportRepository.CreateReport(ctx, report); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	userReport := &models.UserReport{ReportID: report.ID, ReportedBy: userID}
	if err := h.userReportRepository.CreateUserReport(ctx, userReport); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, report)
}

// GetReport retrieves a report by id
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.reportRepository.GetReportByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Report not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

// UpdateReport adjudicates a report. A removal verdict notifies every
// reporter and the subject; other verdicts notify nobody.
func (h *ReportHandler) UpdateReport(c echo.Context) error {
	var req models.UpdateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if err := h.reportRepository.UpdateReportStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Report not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Status == models.ReportStatusRemoved {
		if _, err := h.notifications.SendReportResponseToReporters(ctx, id); err != nil {
			logger.For(ctx).WithError(err).Warn("reporter notification failed")
		}
		if _, err := h.notifications.SendReportResponseToUser(ctx, id); err != nil {
			logger.For(ctx).WithError(err).Warn("report subject notification failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}
