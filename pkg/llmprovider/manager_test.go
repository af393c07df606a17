package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   string
	callCount  int
}

func (m *mockProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	if m.shouldFail {
		return "", &ProviderError{Provider: m.name, Err: errors.New("mock provider error")}
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestManager_NoProvider(t *testing.T) {
	m := NewManager(0, &mockLogger{})

	_, err := m.SendPrompt(context.Background(), "hi")
	if !errors.Is(err, ErrNoProviderConfigured) {
		t.Errorf("SendPrompt() error = %v, want ErrNoProviderConfigured", err)
	}
}

func TestManager_SendPrompt(t *testing.T) {
	m := NewManager(0, &mockLogger{})
	p := &mockProvider{name: "openai", model: "gpt", response: `{"tasks":[]}`}
	m.Set(p)

	got, err := m.SendPrompt(context.Background(), "hi")
	if err != nil {
		t.Fatalf("SendPrompt() error = %v", err)
	}
	if got != `{"tasks":[]}` {
		t.Errorf("SendPrompt() = %q", got)
	}
	if p.callCount != 1 {
		t.Errorf("callCount = %d, want 1", p.callCount)
	}
}

func TestManager_SetReplacesProvider(t *testing.T) {
	m := NewManager(0, &mockLogger{})
	first := &mockProvider{name: "anthropic", response: "a"}
	second := &mockProvider{name: "gemini", response: "b"}

	m.Set(first)
	m.Set(second)
	got, _ := m.SendPrompt(context.Background(), "hi")

	if got != "b" || first.callCount != 0 {
		t.Errorf("SendPrompt() = %q, first.callCount = %d; want b from replacement only", got, first.callCount)
	}

	m.Set(nil)
	if m.Active() != nil {
		t.Error("Active() != nil after Set(nil)")
	}
}

func TestManager_FailureLogged(t *testing.T) {
	logger := &mockLogger{}
	m := NewManager(0, logger)
	m.Set(&mockProvider{name: "openai", shouldFail: true})

	_, err := m.SendPrompt(context.Background(), "hi")
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "openai" {
		t.Errorf("SendPrompt() error = %v, want ProviderError for openai", err)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("warn messages = %d, want 1", len(logger.warnMessages))
	}
}

func TestManager_RateLimitHonoursContext(t *testing.T) {
	m := NewManager(1, &mockLogger{})
	p := &mockProvider{name: "openai", response: "ok"}
	m.Set(p)

	if _, err := m.SendPrompt(context.Background(), "first"); err != nil {
		t.Fatalf("first SendPrompt() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.SendPrompt(ctx, "second")
	if !errors.Is(err, ErrProviderRateLimited) {
		t.Errorf("second SendPrompt() error = %v, want ErrProviderRateLimited", err)
	}
	if p.callCount != 1 {
		t.Errorf("callCount = %d, want 1", p.callCount)
	}
}
