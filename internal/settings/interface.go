package settings

import (
	"context"

	"task-triage/internal/model"
)

// Status is the public view of the backend selection. The key is never exposed.
type Status struct {
	Configured bool           `json:"configured" yaml:"configured"`
	Provider   model.Provider `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// UseCase manages the persisted backend selection and keeps the analyzer in sync.
type UseCase interface {
	// Configure activates and persists provider/apiKey. An empty apiKey
	// clears the selection and leaves the analyzer unconfigured.
	Configure(ctx context.Context, provider model.Provider, apiKey string) error
	Status(ctx context.Context) Status
	// Restore re-activates the persisted selection, falling back to def when
	// nothing is persisted. The fallback is not written back.
	Restore(ctx context.Context, def model.Settings) error
}
