package cache

import (
	"context"

	"task-triage/internal/model"
)

// Cache serves previously obtained backend responses for a task batch.
// Storage failures are logged and treated as misses so they never block analysis.
type Cache interface {
	// Get returns the cached response for the batch, or false when absent or stale.
	// A stale entry is removed as a side effect.
	Get(ctx context.Context, tasks []model.Task) (model.AnalysisResponse, bool)
	// Put stores resp under the batch key with the current time, replacing any prior entry.
	Put(ctx context.Context, tasks []model.Task, resp model.AnalysisResponse) error
	// PurgeExpired removes every stale entry and reports how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
	// Clear removes every entry.
	Clear(ctx context.Context) error
}
