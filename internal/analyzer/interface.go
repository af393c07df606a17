package analyzer

import (
	"context"

	"task-triage/internal/model"
)

// UseCase sends task batches to the active remote backend.
type UseCase interface {
	// Configure activates the backend for provider, discarding any previous one.
	Configure(provider model.Provider, apiKey string) error
	// Reset discards the active backend.
	Reset()
	IsConfigured() bool
	// Provider returns the active backend kind, or "" when unconfigured.
	Provider() model.Provider
	// Analyze returns the backend's assessment of tasks. Transport and parse
	// failures are logged and yield (nil, nil); only ErrNotConfigured is returned.
	Analyze(ctx context.Context, tasks []model.Task) (*model.AnalysisResponse, error)
}
