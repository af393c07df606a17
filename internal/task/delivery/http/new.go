package http

import (
	"github.com/gin-gonic/gin"

	"task-triage/internal/task"
	"task-triage/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Matrix(c *gin.Context)
	Delete(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a task Handler.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
