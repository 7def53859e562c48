package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// ApplicationHandler handles the application workflow endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CandidateData is the candidate payload embedded in an application.
type CandidateData struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Profile  string `json:"profile"`
}

// ResumeData is an inline resume submitted with an application.
type ResumeData struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ApplyRequest represents an application submission. A resume may be attached
// either by id or inline.
type ApplyRequest struct {
	JobID         uuid.UUID     `json:"jobId" validate:"required"`
	CandidateData CandidateData `json:"candidateData" validate:"required"`
	ResumeID      *uuid.UUID    `json:"resumeId"`
	Resume        *ResumeData   `json:"resume"`
	CoverLetter   string        `json:"coverLetter"`
}

func resumeInput(data *ResumeData) *service.ResumeInput {
	if data == nil {
		return nil
	}
	return &service.ResumeInput{Filename: data.Filename, Content: data.Content}
}

// StatusRequest represents a status update.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewing interview offered rejected withdrawn"`
}

// Apply godoc
// @Summary Apply to a job
// @Description Public: candidates do not hold accounts. The candidate record is created on first application and reused afterwards.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Application data"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.Apply(c.Request().Context(), service.ApplyInput{
		JobID: req.JobID,
		Candidate: service.CandidateInput{
			Email:    req.CandidateData.Email,
			Name:     req.CandidateData.Name,
			Phone:    req.CandidateData.Phone,
			Location: req.CandidateData.Location,
			Profile:  req.CandidateData.Profile,
		},
		ResumeID:    req.ResumeID,
		Resume:      resumeInput(req.Resume),
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, application)
}

// ListForJob godoc
// @Summary List a job's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {array} model.Application
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	jobID, err := parseIDParam(c, "jobId")
	if err != nil {
		return err
	}

	applications, err := h.applicationService.ListForJob(c.Request().Context(), actor, jobID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, applications)
}

// SetStatus godoc
// @Summary Update an application's status
// @Description Any accepted status may be set directly; there is no enforced transition order.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.SetStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, application)
}
