package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates an unsupported provider kind
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates a provider was created without a credential
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrNoProviderConfigured indicates the manager has no active provider
	ErrNoProviderConfigured = errors.New("no provider configured")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
