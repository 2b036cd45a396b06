package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"favorites/internal/apperror"
	"favorites/pkg/logger"
)

// ErrorHandler is the fiber error handler. Every error returned by a handler
// ends up here and is written as {"message": ...} with its status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *apperror.APIError
	var fiberErr *fiber.Error

	status := fiber.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &apiErr):
		status = apperror.StatusOf(err)
		message = apiErr.Message
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrValidation):
		status = apperror.StatusOf(err)
		message = err.Error()
	}

	if status >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Str("path", c.Path()).Msg("request rejected")
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// idParam parses the :id route parameter. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func idParam(c *fiber.Ctx, resource string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &apperror.APIError{
			Err:     apperror.ErrNotFound,
			Message: fmt.Sprintf("%s with ID %s not found", resource, c.Params("id")),
			Status:  fiber.StatusNotFound,
		}
	}
	return uint(id), nil
}
