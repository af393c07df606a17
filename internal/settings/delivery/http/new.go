package http

import (
	"github.com/gin-gonic/gin"

	"task-triage/internal/settings"
	"task-triage/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Update(c *gin.Context)
	Get(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a settings Handler.
func New(l log.Logger, uc settings.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps the settings resource under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.PUT("/settings", h.Update)
	rg.GET("/settings", h.Get)
}
