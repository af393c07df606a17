package usecase

import (
	"time"

	"github.com/google/uuid"

	"task-triage/internal/analyzer"
	"task-triage/internal/notify"
	"task-triage/internal/queue"
	"task-triage/internal/task"
	"task-triage/internal/task/repository"
	"task-triage/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	analyzer  analyzer.UseCase
	publisher notify.Publisher
	queue     *queue.Queue

	now   func() time.Time
	newID func() string
}

// New creates a task UseCase that owns its analysis queue.
func New(
	l log.Logger,
	repo repository.Repository,
	an analyzer.UseCase,
	publisher notify.Publisher,
	queueOpts queue.Options,
) task.UseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		analyzer:  an,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	uc.queue = queue.New(uc.processBatch, l, queueOpts)
	return uc
}
