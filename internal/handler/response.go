package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/DivyanshGarg380/Backend-Project/internal/middleware"
	"github.com/DivyanshGarg380/Backend-Project/internal/service"
)

// Success writes the standard API success envelope.
func Success(c fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// Fail writes the standard API error envelope.
func Fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}

// ServiceError converts a service-layer error into the error envelope.
// Sentinel wrapping in the services carries the detail message; unexpected
// errors are logged and masked as a 500.
func ServiceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return Fail(c, fiber.StatusBadRequest, trimSentinel(err, service.ErrInvalidInput))
	case errors.Is(err, service.ErrUnauthorized):
		return Fail(c, fiber.StatusUnauthorized, trimSentinel(err, service.ErrUnauthorized))
	case errors.Is(err, service.ErrForbidden):
		return Fail(c, fiber.StatusForbidden, trimSentinel(err, service.ErrForbidden))
	case errors.Is(err, service.ErrNotFound):
		return Fail(c, fiber.StatusNotFound, trimSentinel(err, service.ErrNotFound))
	case errors.Is(err, service.ErrConflict):
		return Fail(c, fiber.StatusConflict, trimSentinel(err, service.ErrConflict))
	}

	middleware.Logger.Error().Err(err).
		Str("path", c.Path()).
		Msg("unhandled service error")
	return Fail(c, fiber.StatusInternalServerError, "Something went wrong")
}

// trimSentinel strips the "sentinel: " prefix that fmt.Errorf wrapping adds
// so clients see only the human-readable detail.
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
