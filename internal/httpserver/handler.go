package httpserver

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-triage/internal/model"
	notifyHTTP "task-triage/internal/notify/delivery/http"
	settingsHTTP "task-triage/internal/settings/delivery/http"
	taskHTTP "task-triage/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery(), srv.mw.Logger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.allowedOrigins)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group(apiPrefix, srv.mw.RateLimit())

	taskHTTP.RegisterRoutes(api, srv.taskHandler)
	srv.l.Infof(ctx, "Task routes registered at %s/tasks", apiPrefix)

	if srv.settingsHandler != nil {
		settingsHTTP.RegisterRoutes(api, srv.settingsHandler)
		srv.l.Infof(ctx, "Settings routes registered at %s/settings", apiPrefix)
	}

	if srv.eventsHandler != nil {
		notifyHTTP.RegisterRoutes(api, srv.eventsHandler)
		srv.l.Infof(ctx, "Event stream registered at %s/events", apiPrefix)
	}
}

// Handler returns the engine wrapped with CORS for the browser UI.
func (srv *HTTPServer) Handler() http.Handler {
	origins := srv.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(srv.gin)
}
