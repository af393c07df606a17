package repository

import (
	"context"
	"time"

	"task-triage/internal/model"
)

// Repository stores backend responses keyed by batch hash.
type Repository interface {
	// Get returns ErrNotFound when no entry exists for hash.
	Get(ctx context.Context, hash string) (model.CachedResponse, error)
	// Put overwrites any prior entry with the same hash.
	Put(ctx context.Context, entry model.CachedResponse) error
	Delete(ctx context.Context, hash string) error
	// DeleteBefore removes entries captured strictly before cutoff and returns how many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)
	Clear(ctx context.Context) error
}
