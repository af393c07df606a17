package httpserver

import "time"

const (
	apiPrefix              = "/api/v1"
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 10 * time.Second
)
