package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"task-triage/internal/notify"
	"task-triage/pkg/log"
)

// Subscriber is the part of notify.Bus the stream needs.
type Subscriber interface {
	Subscribe() (<-chan notify.Event, func())
}

// Handler streams pipeline events to browsers.
type Handler interface {
	Stream(c *gin.Context)
}

type handler struct {
	l   log.Logger
	sub Subscriber
}

// New creates an events Handler.
func New(l log.Logger, sub Subscriber) Handler {
	return &handler{l: l, sub: sub}
}

// RegisterRoutes maps the event stream under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/events", h.Stream)
}

// Stream godoc
// @Summary     Pipeline events
// @Description Server-Sent Events: tasks-added, processing-error, ai-analysis-complete.
// @Tags        Events
// @Produce     text/event-stream
// @Success     200 {object} notify.Event
// @Router      /api/v1/events [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	events, cancel := h.sub.Subscribe()
	defer cancel()

	h.l.Debugf(ctx, "events: client connected from %s", c.ClientIP())

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return true
		}
	})

	h.l.Debugf(ctx, "events: client %s disconnected", c.ClientIP())
}
