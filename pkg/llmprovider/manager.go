package llmprovider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"task-triage/pkg/log"
)

// Manager holds the single active provider and throttles calls to it.
// Replacing the provider discards the previous one.
type Manager struct {
	mu       sync.RWMutex
	provider Provider
	limiter  *rate.Limiter
	logger   log.Logger
}

// NewManager creates a Manager with no active provider. requestsPerMinute <= 0
// disables throttling.
func NewManager(requestsPerMinute int, logger log.Logger) *Manager {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), max(1, requestsPerMinute/10))
	}
	return &Manager{limiter: limiter, logger: logger}
}

// Set makes p the active provider. A nil p clears it.
func (m *Manager) Set(p Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provider = p
}

// Active returns the active provider, or nil.
func (m *Manager) Active() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider
}

// SendPrompt waits for a rate-limit token and sends prompt to the active provider.
func (m *Manager) SendPrompt(ctx context.Context, prompt string) (string, error) {
	p := m.Active()
	if p == nil {
		return "", ErrNoProviderConfigured
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", &ProviderError{Provider: p.Name(), Err: fmt.Errorf("%w: %v", ErrProviderRateLimited, err)}
	}

	start := time.Now()
	text, err := p.SendPrompt(ctx, prompt)
	if err != nil {
		m.logFailure(ctx, p, err)
		return "", err
	}

	m.logSuccess(ctx, p, time.Since(start))
	return text, nil
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, took time.Duration) {
	m.logger.Debugf(ctx, "llmprovider.Manager: provider=%s model=%s took=%s", p.Name(), p.Model(), took)
}

func (m *Manager) logFailure(ctx context.Context, p Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager: provider=%s model=%s failed: %v", p.Name(), p.Model(), err)
}
