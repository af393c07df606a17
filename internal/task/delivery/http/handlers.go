package http

import (
	"github.com/gin-gonic/gin"

	"task-triage/pkg/response"
)

// Create godoc
// @Summary     Add tasks
// @Description Splits text into one task per line, scores each locally and queues them for remote analysis.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text, one per line"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateBulk(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBulk: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task, newest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Matrix godoc
// @Summary     Quadrant view
// @Description Groups tasks into the four urgency/importance quadrants, highest priority first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} matrixResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/matrix [GET]
func (h *handler) Matrix(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Matrix(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Matrix: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, h.newMatrixResp(m))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Delete all tasks
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.abort(c, err)
		return
	}

	response.OK(c, nil)
}
