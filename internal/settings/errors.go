package settings

import "errors"

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrFailedToPersist = errors.New("failed to persist settings")
)
