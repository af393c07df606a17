package repository

import (
	"context"

	"task-triage/internal/model"
)

// Repository persists the single backend selection.
type Repository interface {
	// Get returns ErrNotFound when nothing has been saved.
	Get(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) error
	Clear(ctx context.Context) error
}
