package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-triage/internal/notify"
	"task-triage/pkg/log"
)

func TestStream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bus := notify.NewBus(log.NewNop(), 4)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), bus))

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events", nil)
	if err != nil {
		t.Fatal(err)
	}

	// Publish until the subscription is live; earlier events have no subscriber.
	go func() {
		for ctx.Err() == nil {
			bus.Publish(ctx, notify.Event{Type: notify.EventTasksAdded, Message: "hello"})
			time.Sleep(10 * time.Millisecond)
		}
	}()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type = %q", ct)
	}

	buf := make([]byte, 512)
	n, err := resp.Body.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	got := string(buf[:n])
	if !strings.Contains(got, "event:tasks-added") || !strings.Contains(got, `"message":"hello"`) {
		t.Errorf("frame = %q", got)
	}
}
