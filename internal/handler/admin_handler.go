package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// AdminHandler handles the admin dashboard aggregates.
type AdminHandler struct {
	reportService service.ReportService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(reportService service.ReportService) *AdminHandler {
	return &AdminHandler{reportService: reportService}
}

// Counts godoc
// @Summary Per-collection totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Counts
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/counts [get]
func (h *AdminHandler) Counts(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	counts, err := h.reportService.Counts(c.Request().Context(), actor)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, counts)
}

// StatusBreakdown godoc
// @Summary Applications grouped by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.StatusCount
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/applications/status [get]
func (h *AdminHandler) StatusBreakdown(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	rows, err := h.reportService.StatusBreakdown(c.Request().Context(), actor)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// TopJobs godoc
// @Summary Jobs ranked by application volume
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Row cap, default 10"
// @Success 200 {array} repository.JobVolume
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/applications/per-job [get]
func (h *AdminHandler) TopJobs(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	rows, err := h.reportService.TopJobs(c.Request().Context(), actor, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// MonthlyVolume godoc
// @Summary Application volume per month, trailing six months
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.MonthlyCount
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/applications/monthly [get]
func (h *AdminHandler) MonthlyVolume(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	rows, err := h.reportService.MonthlyVolume(c.Request().Context(), actor)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
