package cli

import (
	"context"

	"task-triage/config"
	"task-triage/internal/app"
	"task-triage/pkg/log"
)

// OpenApp is the production Opener: it loads config and wires the sqlite-backed core.
func OpenApp(ctx context.Context, path string, verbose bool) (*Core, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Core{
		Tasks:    a.Tasks,
		Settings: a.Settings,
		Cache:    a.Cache,
		Close:    a.Close,
	}, nil
}
