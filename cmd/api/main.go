package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"helloapi/internal/config"
	"helloapi/internal/database"
	"helloapi/internal/health"
	"helloapi/internal/logging"
	"helloapi/internal/otel"
	"helloapi/internal/server"
	"helloapi/internal/service"
	"helloapi/internal/storage"
)

// @title Hello API
// @version 1.0
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	shutdownTracing, err := otel.Init(ctx, "helloapi", loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// Optional readiness dependencies
	var checkers []health.Checker
	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		checkers = append(checkers, database.NewChecker(db))
		logDependency(loc, "postgres", cfg.Database.Host)
	}
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		checkers = append(checkers, objStore)
		logDependency(loc, objStore.Name(), cfg.MinIO.Endpoint)
	}

	healthSvc := service.NewHealthService(time.Duration(cfg.HealthTimeoutSec)*time.Second, loc, checkers...)

	app, err := server.New(server.Options{
		Config:   cfg,
		Health:   healthSvc,
		Location: loc,
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	addr := cfg.Addr()
	listenErr := make(chan error, 1)
	go func() {
		logging.JSON(loc, map[string]any{"msg": "server_starting", "addr": addr})
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		logging.JSON(loc, map[string]any{"level": "error", "msg": "server_shutdown_failed", "error": err.Error()})
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logging.JSON(loc, map[string]any{"level": "error", "msg": "tracing_shutdown_failed", "error": err.Error()})
	}
	if db != nil {
		_ = db.Close()
	}

	logging.JSON(loc, map[string]any{"msg": "server_stopped"})
}

func logDependency(loc *time.Location, name, target string) {
	logging.JSON(loc, map[string]any{
		"msg":        "dependency_configured",
		"dependency": name,
		"target":     target,
	})
}
