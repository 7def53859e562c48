package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// NotificationRequest represents an admin-created notification.
type NotificationRequest struct {
	UserID uuid.UUID         `json:"userId" validate:"required"`
	Title  string            `json:"title" validate:"required"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data"`
}

// List godoc
// @Summary List the acting user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notification
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationService.ListForActor(c.Request().Context(), actor)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} model.Notification
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationService.MarkRead(c.Request().Context(), actor, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, notification)
}

// Create godoc
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NotificationRequest true "Notification data"
// @Success 201 {object} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req NotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notification, err := h.notificationService.Create(c.Request().Context(), actor, service.NotificationInput{
		UserID: req.UserID,
		Title:  req.Title,
		Body:   req.Body,
		Data:   req.Data,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, notification)
}
