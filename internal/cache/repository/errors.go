package repository

import "errors"

var (
	ErrNotFound        = errors.New("cached response not found")
	ErrFailedToPut     = errors.New("failed to store cached response")
	ErrFailedToGet     = errors.New("failed to read cached response")
	ErrFailedToDelete  = errors.New("failed to delete cached response")
	ErrFailedToMigrate = errors.New("failed to migrate response cache")
)
