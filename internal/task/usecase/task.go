package usecase

import (
	"context"
	"errors"
	"slices"

	"task-triage/internal/model"
	"task-triage/internal/notify"
	"task-triage/internal/scoring"
	"task-triage/internal/task"
	"task-triage/internal/task/repository"
)

func (uc *implUseCase) CreateBulk(ctx context.Context, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	lines := parseLines(input.RawText)
	if len(lines) == 0 {
		return task.CreateBulkOutput{}, task.ErrEmptyInput
	}

	now := uc.now()
	tasks := make([]model.Task, len(lines))
	for i, line := range lines {
		tasks[i] = model.Task{
			ID:        uc.newID(),
			Text:      line,
			CreatedAt: now,
		}
	}
	tasks = scoring.ScoreTasks(tasks)

	if err := uc.repo.UpsertTasks(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "task.usecase.CreateBulk: save %d tasks: %v", len(tasks), err)
		uc.publisher.Publish(ctx, notify.Event{Type: notify.EventProcessingError, Message: err.Error()})
		return task.CreateBulkOutput{}, err
	}

	queued := false
	if uc.analyzer.IsConfigured() {
		if err := uc.queue.Enqueue(tasks); err != nil {
			uc.l.Warnf(ctx, "task.usecase.CreateBulk: enqueue: %v", err)
		} else {
			queued = true
		}
	}

	uc.publisher.Publish(ctx, notify.Event{Type: notify.EventTasksAdded, Tasks: tasks})
	uc.l.Infof(ctx, "task.usecase.CreateBulk: created %d tasks (queued=%t)", len(tasks), queued)

	return task.CreateBulkOutput{Tasks: tasks, Queued: queued}, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	return uc.repo.ListTasks(ctx)
}

func (uc *implUseCase) Matrix(ctx context.Context) (task.Matrix, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	m := make(task.Matrix, len(model.Categories))
	for _, c := range model.Categories {
		m[c] = []model.Task{}
	}
	for _, t := range tasks {
		_, c := t.EffectivePriority()
		m[c] = append(m[c], t)
	}

	// tasks arrive newest first, so a stable sort keeps that order among equal scores
	for _, quadrant := range m {
		slices.SortStableFunc(quadrant, func(a, b model.Task) int {
			sa, _ := a.EffectivePriority()
			sb, _ := b.EffectivePriority()
			return sb - sa
		})
	}
	return m, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	err := uc.repo.DeleteTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	return err
}

func (uc *implUseCase) Clear(ctx context.Context) error {
	return uc.repo.ClearTasks(ctx)
}

func (uc *implUseCase) Close(ctx context.Context) error {
	return uc.queue.Close(ctx)
}
