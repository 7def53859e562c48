package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// CandidateHandler handles candidate registry endpoints.
type CandidateHandler struct {
	candidateService service.CandidateService
}

// NewCandidateHandler creates a new candidate handler.
func NewCandidateHandler(candidateService service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// CandidateRequest represents the public candidate upsert.
type CandidateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Profile  string `json:"profile"`
}

// Upsert godoc
// @Summary Create or update a candidate profile
// @Description Public. Keyed by email; on update only non-empty fields replace existing ones.
// @Tags candidates
// @Accept json
// @Produce json
// @Param request body CandidateRequest true "Candidate data"
// @Success 200 {object} model.Candidate
// @Success 201 {object} model.Candidate
// @Failure 400 {object} errors.ErrorResponse
// @Router /candidates [post]
func (h *CandidateHandler) Upsert(c echo.Context) error {
	var req CandidateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	candidate, created, err := h.candidateService.Upsert(c.Request().Context(), service.CandidateInput{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Profile:  req.Profile,
	})
	if err != nil {
		return respondError(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, candidate)
}

// Get godoc
// @Summary Get a candidate by id
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} model.Candidate
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /candidates/{id} [get]
func (h *CandidateHandler) Get(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	candidate, err := h.candidateService.Get(c.Request().Context(), actor, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, candidate)
}

// List godoc
// @Summary List candidates
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search over name, email and profile"
// @Success 200 {array} model.Candidate
// @Failure 403 {object} errors.ErrorResponse
// @Router /candidates [get]
func (h *CandidateHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	candidates, err := h.candidateService.List(c.Request().Context(), actor, c.QueryParam("q"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, candidates)
}
