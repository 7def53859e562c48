package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// EmployerHandler handles employer registry endpoints.
type EmployerHandler struct {
	employerService service.EmployerService
}

// NewEmployerHandler creates a new employer handler.
func NewEmployerHandler(employerService service.EmployerService) *EmployerHandler {
	return &EmployerHandler{employerService: employerService}
}

// EmployerRequest represents an employer create or patch request.
type EmployerRequest struct {
	Name         string `json:"name"`
	Website      string `json:"website"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

func (r EmployerRequest) toInput() service.EmployerInput {
	return service.EmployerInput{
		Name:         r.Name,
		Website:      r.Website,
		Description:  r.Description,
		ContactEmail: r.ContactEmail,
	}
}

// List godoc
// @Summary List employers
// @Tags employers
// @Produce json
// @Success 200 {array} model.Employer
// @Router /employers [get]
func (h *EmployerHandler) List(c echo.Context) error {
	employers, err := h.employerService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, employers)
}

// Get godoc
// @Summary Get an employer by id
// @Tags employers
// @Produce json
// @Param id path string true "Employer ID"
// @Success 200 {object} model.Employer
// @Failure 404 {object} errors.ErrorResponse
// @Router /employers/{id} [get]
func (h *EmployerHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	employer, err := h.employerService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, employer)
}

// Create godoc
// @Summary Create an employer
// @Tags employers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmployerRequest true "Employer data"
// @Success 201 {object} model.Employer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /employers [post]
func (h *EmployerHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req EmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employer, err := h.employerService.Create(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, employer)
}

// Update godoc
// @Summary Patch an employer
// @Tags employers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employer ID"
// @Param request body EmployerRequest true "Fields to update"
// @Success 200 {object} model.Employer
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employers/{id} [patch]
func (h *EmployerHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req EmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employer, err := h.employerService.Update(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, employer)
}

// Delete godoc
// @Summary Delete an employer
// @Tags employers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employer ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employers/{id} [delete]
func (h *EmployerHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.employerService.Delete(c.Request().Context(), actor, id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}
