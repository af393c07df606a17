package usecase

import (
	"task-triage/internal/analyzer"
	"task-triage/internal/settings"
	"task-triage/internal/settings/repository"
	"task-triage/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	analyzer analyzer.UseCase
}

// New creates a settings UseCase.
func New(l log.Logger, repo repository.Repository, an analyzer.UseCase) settings.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		analyzer: an,
	}
}
