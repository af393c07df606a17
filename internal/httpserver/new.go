package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-triage/internal/middleware"
	notifyHTTP "task-triage/internal/notify/delivery/http"
	settingsHTTP "task-triage/internal/settings/delivery/http"
	taskHTTP "task-triage/internal/task/delivery/http"
	"task-triage/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	shutdownTimeout time.Duration
	readiness       func(ctx context.Context) error
	mw              middleware.Middleware

	// Domains
	taskHandler     taskHTTP.Handler
	settingsHandler settingsHTTP.Handler
	eventsHandler   notifyHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	RateLimitPerMin int // per client, 0 disables
	// Readiness reports whether dependencies (the store) are reachable. Optional.
	Readiness func(ctx context.Context) error

	TaskHandler     taskHTTP.Handler
	SettingsHandler settingsHTTP.Handler
	EventsHandler   notifyHTTP.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		readiness:       cfg.Readiness,
		mw:              middleware.New(logger, cfg.RateLimitPerMin),
		taskHandler:     cfg.TaskHandler,
		settingsHandler: cfg.SettingsHandler,
		eventsHandler:   cfg.EventsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
