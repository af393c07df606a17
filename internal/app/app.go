package app

import (
	"context"
	"database/sql"
	"fmt"

	"task-triage/config"
	"task-triage/internal/analyzer"
	"task-triage/internal/cache"
	cacheRepo "task-triage/internal/cache/repository"
	cacheMemory "task-triage/internal/cache/repository/memory"
	cacheSQLite "task-triage/internal/cache/repository/sqlite"
	"task-triage/internal/model"
	"task-triage/internal/notify"
	"task-triage/internal/queue"
	"task-triage/internal/settings"
	settingsSQLite "task-triage/internal/settings/repository/sqlite"
	settingsUC "task-triage/internal/settings/usecase"
	"task-triage/internal/task"
	taskSQLite "task-triage/internal/task/repository/sqlite"
	taskUC "task-triage/internal/task/usecase"
	"task-triage/pkg/llmprovider"
	"task-triage/pkg/log"
	"task-triage/pkg/sqlite"
)

// App is the wired triage core shared by the HTTP service and the CLI.
type App struct {
	DB       *sql.DB
	Cache    cache.Cache
	Analyzer analyzer.UseCase
	Settings settings.UseCase
	Tasks    task.UseCase
	Bus      *notify.Bus

	l log.Logger
}

// New opens the store, wires every component and restores the persisted
// backend selection (falling back to llm.provider/llm.api_key).
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	a, err := wire(ctx, cfg, l, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func wire(ctx context.Context, cfg *config.Config, l log.Logger, db *sql.DB) (*App, error) {
	// 1. Repositories
	taskRepo, err := taskSQLite.New(ctx, db, l)
	if err != nil {
		return nil, fmt.Errorf("task store: %w", err)
	}
	settingsRepo, err := settingsSQLite.New(ctx, db, l)
	if err != nil {
		return nil, fmt.Errorf("settings store: %w", err)
	}
	responses, err := newCacheRepo(ctx, cfg.Cache, db, l)
	if err != nil {
		return nil, fmt.Errorf("cache store: %w", err)
	}

	// 2. Cache
	c := cache.New(responses, l, cache.Options{Expiry: cfg.Cache.Expiry})

	// 3. Analyzer
	manager := llmprovider.NewManager(cfg.LLM.RequestsPerMinute, l)
	an := analyzer.New(l, c, manager, analyzer.Options{Providers: providerOverrides(cfg.LLM)})

	// 4. Settings
	st := settingsUC.New(l, settingsRepo, an)
	def := model.Settings{Provider: model.Provider(cfg.LLM.Provider), APIKey: cfg.LLM.APIKey}
	if err := st.Restore(ctx, def); err != nil {
		l.Warnf(ctx, "app.New: restore settings: %v", err)
	}

	// 5. Tasks and pipeline
	bus := notify.NewBus(l, 0)
	tasks := taskUC.New(l, taskRepo, an, bus, queue.Options{
		QuietPeriod: cfg.Queue.QuietPeriod,
		RetryDelay:  cfg.Queue.RetryDelay,
		BatchSize:   cfg.Queue.BatchSize,
	})

	return &App{
		DB:       db,
		Cache:    c,
		Analyzer: an,
		Settings: st,
		Tasks:    tasks,
		Bus:      bus,
		l:        l,
	}, nil
}

func newCacheRepo(ctx context.Context, cfg config.CacheConfig, db *sql.DB, l log.Logger) (cacheRepo.Repository, error) {
	if cfg.Driver == config.CacheDriverMemory {
		return cacheMemory.New(cfg.MemorySize, cfg.Expiry), nil
	}
	return cacheSQLite.New(ctx, db, l)
}

func providerOverrides(cfg config.LLMConfig) map[model.Provider]llmprovider.Config {
	out := make(map[model.Provider]llmprovider.Config, len(cfg.Providers))
	for kind, p := range cfg.Providers {
		out[model.Provider(kind)] = llmprovider.Config{
			Model:   p.Model,
			BaseURL: p.BaseURL,
			Timeout: p.Timeout,
		}
	}
	return out
}

// Close drains the in-flight batch and closes the store.
func (a *App) Close(ctx context.Context) error {
	if err := a.Tasks.Close(ctx); err != nil {
		a.l.Warnf(ctx, "app.Close: tasks: %v", err)
	}
	return a.DB.Close()
}
