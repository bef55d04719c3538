package handler

import (
	"github.com/gofiber/fiber/v2"

	"helloapi/internal/service"
)

// HealthCheck godoc
// @Summary      Readiness probe
// @Description  Probes configured dependencies (database, object storage).
// @Tags         health
// @Produce      json
// @Success      200  {object}  service.HealthReport
// @Failure      503  {object}  errorPayload
// @Router       /health [get]
func HealthCheck(svc service.HealthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.Check(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(report)
	}
}

// LivenessProbe godoc
// @Summary      Liveness probe
// @Tags         health
// @Success      200
// @Router       /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
