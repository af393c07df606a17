package analyzer

import (
	"context"
	"fmt"
	"sync"

	"task-triage/internal/cache"
	"task-triage/internal/model"
	"task-triage/pkg/llmprovider"
	"task-triage/pkg/log"
)

// ProviderFactory builds a backend for kind. llmprovider.New satisfies it.
type ProviderFactory func(kind, apiKey string, cfg llmprovider.Config) (llmprovider.Provider, error)

// Options tunes an analyzer. Zero values pick defaults.
type Options struct {
	// Providers holds per-kind overrides (model, base URL, timeout).
	Providers map[model.Provider]llmprovider.Config
	Factory   ProviderFactory
}

type implUseCase struct {
	l       log.Logger
	cache   cache.Cache
	manager *llmprovider.Manager
	opts    Options

	mu       sync.RWMutex
	provider model.Provider
}

// New creates an unconfigured analyzer.
func New(l log.Logger, c cache.Cache, manager *llmprovider.Manager, opts Options) UseCase {
	if opts.Factory == nil {
		opts.Factory = llmprovider.New
	}
	return &implUseCase{
		l:       l,
		cache:   c,
		manager: manager,
		opts:    opts,
	}
}

func (uc *implUseCase) Configure(provider model.Provider, apiKey string) error {
	if !provider.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, provider)
	}
	if apiKey == "" {
		return ErrMissingAPIKey
	}

	p, err := uc.opts.Factory(string(provider), apiKey, uc.opts.Providers[provider])
	if err != nil {
		return fmt.Errorf("configure %s: %w", provider, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.manager.Set(p)
	uc.provider = provider
	uc.l.Infof(context.Background(), "analyzer.Configure: provider=%s model=%s", provider, p.Model())
	return nil
}

func (uc *implUseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.manager.Set(nil)
	uc.provider = ""
}

func (uc *implUseCase) IsConfigured() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.provider != ""
}

func (uc *implUseCase) Provider() model.Provider {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.provider
}

func (uc *implUseCase) Analyze(ctx context.Context, tasks []model.Task) (*model.AnalysisResponse, error) {
	if !uc.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	if cached, ok := uc.cache.Get(ctx, tasks); ok {
		uc.l.Debugf(ctx, "analyzer.Analyze: served %d tasks from cache", len(tasks))
		return &cached, nil
	}

	text, err := uc.manager.SendPrompt(ctx, BuildPrompt(tasks))
	if err != nil {
		uc.l.Warnf(ctx, "analyzer.Analyze: backend call failed: %v", err)
		return nil, nil
	}

	resp, err := ParseResponse(text)
	if err != nil {
		uc.l.Warnf(ctx, "analyzer.Analyze: %v", err)
		return nil, nil
	}

	// Cache write failures are logged by the cache and only skip caching.
	_ = uc.cache.Put(ctx, tasks, *resp)
	return resp, nil
}
