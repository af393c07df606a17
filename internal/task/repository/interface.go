package repository

import (
	"context"

	"task-triage/internal/model"
)

// Repository is the durable task store. Records are keyed by task ID and
// re-upserting an ID replaces the stored record wholesale.
type Repository interface {
	// UpsertTasks writes all tasks in a single transaction.
	UpsertTasks(ctx context.Context, tasks []model.Task) error
	UpsertTask(ctx context.Context, task model.Task) error
	// UpdateTasks rewrites only tasks that still exist, in one transaction,
	// and returns the ones written.
	UpdateTasks(ctx context.Context, tasks []model.Task) ([]model.Task, error)
	// GetTask returns ErrNotFound when the ID is unknown.
	GetTask(ctx context.Context, id string) (model.Task, error)
	// ListTasks returns every task ordered by CreatedAt descending.
	ListTasks(ctx context.Context) ([]model.Task, error)
	// DeleteTask returns ErrNotFound when the ID is unknown.
	DeleteTask(ctx context.Context, id string) error
	ClearTasks(ctx context.Context) error
}
