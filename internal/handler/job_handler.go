package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// JobHandler handles job registry endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents a job create or patch request. The employer is taken
// from the acting user, never from the body.
type JobRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Type        string     `json:"type" validate:"omitempty,oneof=full-time part-time contract remote"`
	SalaryRange string     `json:"salary_range"`
	Tags        []string   `json:"tags"`
	IsActive    *bool      `json:"is_active"`
	ClosedAt    *time.Time `json:"closed_at"`
}

func (r JobRequest) toInput() service.JobInput {
	return service.JobInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		SalaryRange: r.SalaryRange,
		Tags:        r.Tags,
		IsActive:    r.IsActive,
		ClosedAt:    r.ClosedAt,
	}
}

// List godoc
// @Summary List active jobs
// @Tags jobs
// @Produce json
// @Param page query int false "Page, 1-based"
// @Param limit query int false "Page size, capped at 100"
// @Param tag query string false "Filter by tag"
// @Param location query string false "Filter by location"
// @Param q query string false "Free-text search over title and description"
// @Success 200 {object} service.JobPage
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.jobService.List(
		c.Request().Context(),
		c.QueryParam("tag"),
		c.QueryParam("location"),
		c.QueryParam("q"),
		page,
		limit,
	)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Get a job by id
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Patch a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body JobRequest true "Fields to update"
// @Success 200 {object} model.Job
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.jobService.Delete(c.Request().Context(), actor, id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
