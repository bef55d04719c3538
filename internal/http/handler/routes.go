package handler

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helloapi/docs"
	"helloapi/internal/http/middleware"
	"helloapi/internal/model"
	"helloapi/internal/service"
)

// RegisterRoutes attaches the application route table to app:
//
//	GET  /          greeting
//	POST /post      echo
//	GET  /status    application info
//	GET  /a/:name   name echo
func RegisterRoutes(app *fiber.App, info model.AppInfo) {
	app.Get("/", Hello())
	app.Post("/post", Echo())
	app.Get("/status", Status(info))
	app.Get("/a/:name", SetName())
}

// RegisterOpsRoutes attaches health probes, metrics exposition and API docs.
func RegisterOpsRoutes(app *fiber.App, healthSvc service.HealthService, gatherer prometheus.Gatherer) {
	app.Get("/health", HealthCheck(healthSvc))
	app.Get("/healthz", LivenessProbe())
	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", Swagger())
}

// swaggerMu guards docs.SwaggerInfo, which swag reads while rendering doc.json.
var swaggerMu sync.Mutex

// Swagger serves the Swagger UI with host and scheme resolved per request.
func Swagger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		swaggerMu.Lock()
		defer swaggerMu.Unlock()

		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
