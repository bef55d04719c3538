package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// UnmatchedLocalKey is set by the catch-all handler so metrics do not use raw
// request paths as label values.
const UnmatchedLocalKey = "route_unmatched"

// responseStatus returns the status the client will see. When a handler
// returned an error, the global ErrorHandler has not run yet, so the status
// is derived from the error itself.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// routeLabel returns the matched route pattern (e.g. /a/:name).
func routeLabel(c *fiber.Ctx) string {
	if unmatched, _ := c.Locals(UnmatchedLocalKey).(bool); unmatched {
		return "unmatched"
	}
	if p := c.Route().Path; p != "" {
		return p
	}
	return c.Path()
}
