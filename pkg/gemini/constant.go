package gemini

import "time"

// Used when Config leaves the field empty.
const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)
