package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-triage/config"
	_ "task-triage/docs" // Swagger docs
	"task-triage/internal/app"
	"task-triage/internal/cache"
	"task-triage/internal/httpserver"
	notifyHTTP "task-triage/internal/notify/delivery/http"
	settingsHTTP "task-triage/internal/settings/delivery/http"
	taskHTTP "task-triage/internal/task/delivery/http"
	"task-triage/pkg/log"
)

const shutdownTimeout = 15 * time.Second

// @title       Task Triage API
// @description Scores tasks locally and refines them with a remote language model.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Triage...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s (cache driver: %s)", cfg.Storage.Path, cfg.Cache.Driver)

	// 3. Core
	core, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize core: ", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := core.Close(closeCtx); err != nil {
			logger.Warnf(closeCtx, "Close: %v", err)
		}
	}()

	// 4. Cache maintenance
	if n, err := core.Cache.PurgeExpired(ctx); err != nil {
		logger.Warnf(ctx, "Startup cache purge failed: %v", err)
	} else {
		logger.Infof(ctx, "Startup cache purge removed %d entries", n)
	}

	purger, err := cache.NewPurger(core.Cache, logger, cfg.Cache.PurgeSchedule)
	if err != nil {
		logger.Error(ctx, "Failed to schedule cache purge: ", err)
		return
	}
	purger.Start()
	defer purger.Stop()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		ShutdownTimeout: shutdownTimeout,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		Readiness:       core.DB.PingContext,
		TaskHandler:     taskHTTP.New(logger, core.Tasks),
		SettingsHandler: settingsHTTP.New(logger, core.Settings),
		EventsHandler:   notifyHTTP.New(logger, core.Bus),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
