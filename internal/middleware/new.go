package middleware

import (
	"task-triage/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route.
type Middleware struct {
	l       log.Logger
	limiter *clientLimiter
}

// New creates a Middleware. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newClientLimiter(requestsPerMin)
	}
	return m
}
