// Package apperror holds the error type every handler-raised failure is
// funnelled through. An APIError carries the HTTP status and the message
// that ends up in the {"message": ...} response body.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrInvalidAssociation = errors.New("invalid association")
)

// APIError is an error with a client-facing message and status code.
type APIError struct {
	Err     error
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// New builds an APIError with an explicit status.
func New(status int, message string) *APIError {
	return &APIError{Message: message, Status: status}
}

// NotFound reports that the given resource id does not resolve to a row.
func NotFound(resource string, id uint) *APIError {
	return &APIError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with ID %d not found", resource, id),
		Status:  http.StatusNotFound,
	}
}

// ValidationFailed reports a missing or malformed field on creation.
func ValidationFailed(message string) *APIError {
	return &APIError{
		Err:     ErrValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// InvalidAssociation reports a favorite operation whose target is not
// associated with the user. It matches both ErrInvalidAssociation and
// ErrNotFound, and is reported as 404.
func InvalidAssociation(resource string, id, userID uint) *APIError {
	return &APIError{
		Err:     errors.Join(ErrInvalidAssociation, ErrNotFound),
		Message: fmt.Sprintf("%s with ID %d is not a favorite of user %d", resource, id, userID),
		Status:  http.StatusNotFound,
	}
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
