package repository

import "errors"

var (
	ErrNotFound        = errors.New("task not found")
	ErrFailedToUpsert  = errors.New("failed to upsert task")
	ErrFailedToGet     = errors.New("failed to get task")
	ErrFailedToList    = errors.New("failed to list tasks")
	ErrFailedToDelete  = errors.New("failed to delete task")
	ErrFailedToMigrate = errors.New("failed to migrate task store")
)
