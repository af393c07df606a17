package task

import (
	"context"

	"task-triage/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// CreateBulk parses one task per line, scores and stores them, and queues
	// them for remote analysis when a backend is configured.
	CreateBulk(ctx context.Context, input CreateBulkInput) (CreateBulkOutput, error)

	// List returns every task, newest first.
	List(ctx context.Context) ([]model.Task, error)

	// Matrix groups tasks into the four quadrants, highest priority first.
	Matrix(ctx context.Context) (Matrix, error)

	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error

	// Analyze queues every task without a remote assessment and waits until
	// the queue drains or ctx is done.
	Analyze(ctx context.Context) (AnalyzeOutput, error)

	// Close stops the analysis queue and waits for the in-flight batch.
	Close(ctx context.Context) error
}
