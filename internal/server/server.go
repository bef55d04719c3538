package server

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"helloapi/internal/config"
	handlers "helloapi/internal/http/handler"
	"helloapi/internal/http/middleware"
	"helloapi/internal/model"
	"helloapi/internal/service"
)

// Options carries the collaborators New wires into the app.
type Options struct {
	Config *config.AppConfig
	Health service.HealthService
	// Registry receives the HTTP and runtime collectors; nil creates a fresh one.
	Registry *prometheus.Registry
	// AccessLog receives access log lines; nil means stdout.
	AccessLog io.Writer
	Location  *time.Location
}

// New builds the Fiber app with middleware, the route table, ops routes and
// the terminal not-found handler installed in that order.
func New(opts Options) (*fiber.App, error) {
	cfg := opts.Config

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	logOut := opts.AccessLog
	if logOut == nil {
		logOut = os.Stdout
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ErrorHandler:          handlers.ErrorHandler(),
		JSONEncoder:           handlers.MarshalJSON,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.LoggerWithWriter(logOut, loc))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, model.AppInfo{Name: cfg.AppName, Version: cfg.Version})
	handlers.RegisterOpsRoutes(app, opts.Health, reg)

	app.Use(handlers.NotFound())

	return app, nil
}
