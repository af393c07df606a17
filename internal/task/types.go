package task

import "task-triage/internal/model"

// CreateBulkInput is the input for bulk task creation.
type CreateBulkInput struct {
	RawText string // One task per line
}

// CreateBulkOutput is the result of the bulk task creation operation.
type CreateBulkOutput struct {
	Tasks  []model.Task // Newly created tasks with local priority
	Queued bool         // Whether the tasks were queued for remote analysis
}

// AnalyzeOutput is the result of analyzing every task that lacks a remote assessment.
type AnalyzeOutput struct {
	Queued   int
	Analyzed int
}

// Matrix groups tasks by effective category. Every category is present.
type Matrix map[model.Category][]model.Task
