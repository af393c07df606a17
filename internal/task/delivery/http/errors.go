package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-triage/internal/analyzer"
	"task-triage/internal/task"
	"task-triage/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, analyzer.ErrNotConfigured):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return nil
	}
}

func (h *handler) abort(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr)
		return
	}
	response.InternalError(c, err)
}
