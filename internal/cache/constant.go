package cache

import "time"

const (
	DefaultExpiry = 24 * time.Hour

	keySeparator = "|"
)
