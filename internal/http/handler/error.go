package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"helloapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestTimeout:
			return writeError(c, status, "REQUEST_TIMEOUT", "request timeout")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "REQUEST_TOO_LARGE", "request body too large")
		case fiber.StatusRequestHeaderFieldsTooLarge:
			return writeError(c, status, "HEADERS_TOO_LARGE", "request header fields too large")
		case fiber.StatusServiceUnavailable:
			return writeError(c, status, "SERVICE_UNAVAILABLE", "service unavailable")
		}

		if status < fiber.StatusInternalServerError {
			return writeError(c, status, "REQUEST_ERROR", "request could not be processed")
		}
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}

// NotFound is the terminal catch-all. Any method or path not matched by the
// route table ends here, so Fiber never answers 405.
func NotFound() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.UnmatchedLocalKey, true)
		return fiber.ErrNotFound
	}
}
