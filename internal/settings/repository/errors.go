package repository

import "errors"

var (
	ErrNotFound        = errors.New("settings not found")
	ErrFailedToSave    = errors.New("failed to save settings")
	ErrFailedToGet     = errors.New("failed to read settings")
	ErrFailedToDelete  = errors.New("failed to clear settings")
	ErrFailedToMigrate = errors.New("failed to migrate settings store")
)
