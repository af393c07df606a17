package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-triage/internal/model"
	"task-triage/internal/settings"
	"task-triage/pkg/response"
)

type updateReq struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
}

// Update godoc
// @Summary     Configure the analysis backend
// @Description Activates and persists a provider/key pair. An empty api_key clears the selection.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Provider and key"
// @Success     200  {object} settings.Status
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Configure(ctx, model.Provider(req.Provider), req.APIKey); err != nil {
		h.l.Warnf(ctx, "uc.Configure: %v", err)
		if errors.Is(err, settings.ErrInvalidProvider) {
			response.Error(c, response.NewHTTPError(http.StatusBadRequest, err.Error()))
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.uc.Status(ctx))
}

// Get godoc
// @Summary     Backend status
// @Description Reports whether a backend is configured. The key is never returned.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settings.Status
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, h.uc.Status(c.Request.Context()))
}
