package handlers

import (
	"errors"
	"fmt"
	"log/slog"

	"catalog/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RequestError is a malformed or invalid request. It renders as 400.
type RequestError struct {
	Message string
	Fields  map[string]string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Cause }

func newValidationError(err error) *RequestError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &RequestError{Message: "Validation failed", Cause: err}
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &RequestError{Message: "Validation failed", Fields: fields, Cause: err}
}

// ErrorHandler renders handler errors as JSON. Catalog errors map by kind,
// request errors to 400, fiber errors keep their code, anything else is an
// opaque 500.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := render(err)
		if status == fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}
		return c.Status(status).JSON(body)
	}
}

func render(err error) (int, fiber.Map) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		body := fiber.Map{
			"statusCode": fiber.StatusBadRequest,
			"error":      "Bad Request",
			"message":    reqErr.Message,
		}
		if len(reqErr.Fields) > 0 {
			body["errors"] = reqErr.Fields
		}
		return fiber.StatusBadRequest, body
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiber.Map{"statusCode": fiberErr.Code, "message": fiberErr.Message}
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			return fiber.StatusNotFound, fiber.Map{
				"statusCode": fiber.StatusNotFound,
				"error":      "Not Found",
				"message":    appErr.Message,
			}
		case apperrors.KindConflict:
			return fiber.StatusConflict, fiber.Map{
				"statusCode": fiber.StatusConflict,
				"error":      "Conflict",
				"message":    appErr.Message,
			}
		}
	}

	return fiber.StatusInternalServerError, fiber.Map{
		"statusCode": fiber.StatusInternalServerError,
		"error":      "Internal Server Error",
		"message":    apperrors.InternalMessage,
	}
}
