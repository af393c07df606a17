package usecase

import (
	"context"

	"task-triage/internal/analyzer"
	"task-triage/internal/model"
	"task-triage/internal/notify"
	"task-triage/internal/task"
)

// processBatch is the queue handler: analyze, merge and persist.
func (uc *implUseCase) processBatch(ctx context.Context, batch []model.Task) {
	provider := uc.analyzer.Provider()

	resp, err := uc.analyzer.Analyze(ctx, batch)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.processBatch: %v", err)
		uc.publisher.Publish(ctx, notify.Event{Type: notify.EventProcessingError, Message: err.Error()})
		return
	}
	if resp == nil {
		uc.l.Infof(ctx, "task.usecase.processBatch: no analysis for %d tasks, keeping local priority", len(batch))
		return
	}

	merged := analyzer.MapResponseToTasks(batch, resp, provider)

	// Tasks deleted while the request was in flight are dropped here.
	updated, err := uc.repo.UpdateTasks(ctx, merged)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.processBatch: save: %v", err)
		uc.publisher.Publish(ctx, notify.Event{Type: notify.EventProcessingError, Message: err.Error()})
		return
	}

	// Tasks stays the submitted batch so Response indices still line up.
	uc.publisher.Publish(ctx, notify.Event{
		Type:     notify.EventAnalysisComplete,
		Tasks:    batch,
		Updated:  updated,
		Response: resp,
		Provider: provider,
	})
}

func (uc *implUseCase) Analyze(ctx context.Context) (task.AnalyzeOutput, error) {
	if !uc.analyzer.IsConfigured() {
		return task.AnalyzeOutput{}, analyzer.ErrNotConfigured
	}

	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return task.AnalyzeOutput{}, err
	}

	var pending []model.Task
	for _, t := range tasks {
		if needsAnalysis(t) {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return task.AnalyzeOutput{}, nil
	}

	if err := uc.queue.Enqueue(pending); err != nil {
		return task.AnalyzeOutput{}, err
	}
	if err := uc.queue.Drain(ctx); err != nil {
		return task.AnalyzeOutput{Queued: len(pending)}, err
	}

	after, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return task.AnalyzeOutput{Queued: len(pending)}, err
	}
	queuedIDs := ids(pending)
	out := task.AnalyzeOutput{Queued: len(pending)}
	for _, t := range after {
		if _, ok := queuedIDs[t.ID]; ok && !needsAnalysis(t) {
			out.Analyzed++
		}
	}
	return out, nil
}
