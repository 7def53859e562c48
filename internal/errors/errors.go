package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when credentials are missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the actor is authenticated but not permitted.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on duplicate unique keys.
	ErrConflict = errors.New("conflict")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Error:   e.Detail,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected faults map to a
// generic 500 without leaking internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Forbidden", "")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "")
	}
}

// InvalidInput wraps ErrInvalidInput with a field-specific message.
func InvalidInput(msg string) error {
	return wrapped{msg: msg, err: ErrInvalidInput}
}

// NotFound wraps ErrNotFound with an entity-specific message.
func NotFound(msg string) error {
	return wrapped{msg: msg, err: ErrNotFound}
}

// Conflict wraps ErrConflict with a key-specific message.
func Conflict(msg string) error {
	return wrapped{msg: msg, err: ErrConflict}
}

type wrapped struct {
	msg string
	err error
}

func (w wrapped) Error() string { return w.msg }
func (w wrapped) Unwrap() error { return w.err }
