package llmprovider

import (
	"fmt"

	"task-triage/pkg/gemini"
)

// New creates the provider for kind, filling unset Config fields with that
// kind's defaults.
func New(kind, apiKey string, cfg Config) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("provider %s: %w", kind, ErrMissingAPIKey)
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	switch kind {
	case KindAnthropic:
		if cfg.Model == "" {
			cfg.Model = DefaultAnthropicModel
		}
		return NewAnthropicAdapter(apiKey, cfg), nil

	case KindOpenAI:
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}
		return NewOpenAIAdapter(apiKey, cfg), nil

	case KindGemini:
		if cfg.Model == "" {
			cfg.Model = DefaultGeminiModel
		}
		client, err := gemini.New(gemini.Config{
			APIKey:  apiKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client, cfg), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, kind)
	}
}
