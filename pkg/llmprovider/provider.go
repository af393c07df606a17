package llmprovider

import (
	"context"
	"time"
)

// Provider is one interchangeable remote backend: send a prompt, get text back.
type Provider interface {
	// SendPrompt sends a single-turn prompt and returns the raw text reply.
	SendPrompt(ctx context.Context, prompt string) (string, error)

	// Name returns the provider kind (e.g., "anthropic", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Config tunes a provider. Zero values pick the per-kind defaults.
type Config struct {
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}
