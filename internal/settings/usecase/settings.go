package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-triage/internal/model"
	"task-triage/internal/settings"
	"task-triage/internal/settings/repository"
)

func (uc *implUseCase) Configure(ctx context.Context, provider model.Provider, apiKey string) error {
	if apiKey == "" {
		uc.analyzer.Reset()
		if err := uc.repo.Clear(ctx); err != nil {
			uc.l.Errorf(ctx, "settings.usecase.Configure: clear: %v", err)
			return fmt.Errorf("%w: %v", settings.ErrFailedToPersist, err)
		}
		uc.l.Infof(ctx, "settings.usecase.Configure: remote analysis disabled")
		return nil
	}

	if !provider.Valid() {
		return fmt.Errorf("%w: %q", settings.ErrInvalidProvider, provider)
	}

	if err := uc.analyzer.Configure(provider, apiKey); err != nil {
		uc.l.Warnf(ctx, "settings.usecase.Configure: %v", err)
		return err
	}

	if err := uc.repo.Save(ctx, model.Settings{Provider: provider, APIKey: apiKey}); err != nil {
		uc.l.Errorf(ctx, "settings.usecase.Configure: save: %v", err)
		return fmt.Errorf("%w: %v", settings.ErrFailedToPersist, err)
	}
	return nil
}

func (uc *implUseCase) Status(_ context.Context) settings.Status {
	return settings.Status{
		Configured: uc.analyzer.IsConfigured(),
		Provider:   uc.analyzer.Provider(),
	}
}

func (uc *implUseCase) Restore(ctx context.Context, def model.Settings) error {
	s, err := uc.repo.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s = def
	case err != nil:
		uc.l.Warnf(ctx, "settings.usecase.Restore: %v", err)
		s = def
	}

	if s.APIKey == "" {
		uc.l.Infof(ctx, "settings.usecase.Restore: no backend configured, local scoring only")
		return nil
	}

	if err := uc.analyzer.Configure(s.Provider, s.APIKey); err != nil {
		uc.l.Warnf(ctx, "settings.usecase.Restore: provider=%s: %v", s.Provider, err)
		return err
	}
	return nil
}
