package analyzer

import "errors"

var (
	ErrNotConfigured   = errors.New("analyzer is not configured")
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrParseResponse   = errors.New("failed to parse analysis response")
)
