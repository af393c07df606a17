package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newBackend(t *testing.T, status int, body string, gotPrompt *string) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if gotPrompt != nil {
			*gotPrompt = string(raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestAnthropicAdapter_SendPrompt(t *testing.T) {
	var reqBody string
	url := newBackend(t, http.StatusOK, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-3-haiku-20240307",
		"content": [{"type": "text", "text": "{\"tasks\":[]}"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`, &reqBody)

	p, err := New(KindAnthropic, "key", Config{BaseURL: url})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := p.SendPrompt(context.Background(), "rank my tasks")
	if err != nil {
		t.Fatalf("SendPrompt() error = %v", err)
	}
	if got != `{"tasks":[]}` {
		t.Errorf("SendPrompt() = %q", got)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(reqBody), &sent); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if sent["model"] != DefaultAnthropicModel {
		t.Errorf("model = %v", sent["model"])
	}
	if sent["max_tokens"] != float64(DefaultMaxTokens) {
		t.Errorf("max_tokens = %v", sent["max_tokens"])
	}
	if !strings.Contains(reqBody, "rank my tasks") {
		t.Error("prompt not sent")
	}
}

func TestOpenAIAdapter_SendPrompt(t *testing.T) {
	var reqBody string
	url := newBackend(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-3.5-turbo",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"tasks\":[]}"}}]
	}`, &reqBody)

	p, err := New(KindOpenAI, "key", Config{BaseURL: url})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := p.SendPrompt(context.Background(), "rank my tasks")
	if err != nil {
		t.Fatalf("SendPrompt() error = %v", err)
	}
	if got != `{"tasks":[]}` {
		t.Errorf("SendPrompt() = %q", got)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(reqBody), &sent); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if sent["model"] != DefaultOpenAIModel {
		t.Errorf("model = %v", sent["model"])
	}
	if sent["temperature"] != DefaultTemperature {
		t.Errorf("temperature = %v", sent["temperature"])
	}
}

func TestOpenAIAdapter_EmptyChoices(t *testing.T) {
	url := newBackend(t, http.StatusOK, `{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`, nil)
	p, _ := New(KindOpenAI, "key", Config{BaseURL: url})

	_, err := p.SendPrompt(context.Background(), "x")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("SendPrompt() error = %v, want ErrEmptyResponse", err)
	}
}

func TestGeminiAdapter_SendPrompt(t *testing.T) {
	url := newBackend(t, http.StatusOK, `{"candidates": [{"content": {"parts": [{"text": "{\"tasks\":[]}"}]}}]}`, nil)
	p, err := New(KindGemini, "key", Config{BaseURL: url})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := p.SendPrompt(context.Background(), "x")
	if err != nil {
		t.Fatalf("SendPrompt() error = %v", err)
	}
	if got != `{"tasks":[]}` {
		t.Errorf("SendPrompt() = %q", got)
	}
}

func TestAdapters_TransportErrorsWrapped(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			url := newBackend(t, http.StatusUnauthorized, `{"error": {"type": "authentication_error", "message": "bad key"}}`, nil)
			p, err := New(kind, "bad", Config{BaseURL: url})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			_, err = p.SendPrompt(context.Background(), "x")
			var perr *ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("SendPrompt() error = %v, want *ProviderError", err)
			}
			if perr.Provider != kind {
				t.Errorf("Provider = %q, want %q", perr.Provider, kind)
			}
		})
	}
}
