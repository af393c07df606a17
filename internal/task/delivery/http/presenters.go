package http

import (
	"time"

	"task-triage/internal/model"
	"task-triage/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required"`
}

func (r createReq) toInput() task.CreateBulkInput {
	return task.CreateBulkInput{RawText: r.Text}
}

// --- Response DTOs ---

type priorityResp struct {
	Score      int      `json:"score"`
	Category   string   `json:"category"`
	Reasoning  string   `json:"reasoning,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Provider   string   `json:"provider,omitempty"`
}

type taskResp struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	CreatedAt     time.Time     `json:"created_at"`
	LocalPriority *priorityResp `json:"local_priority,omitempty"`
	AIPriority    *priorityResp `json:"ai_priority,omitempty"`
}

type createResp struct {
	Tasks  []taskResp `json:"tasks"`
	Queued bool       `json:"queued"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

type matrixResp map[string][]taskResp

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Text:      t.Text,
		CreatedAt: t.CreatedAt,
	}
	if t.LocalPriority != nil {
		resp.LocalPriority = &priorityResp{
			Score:    t.LocalPriority.Score,
			Category: string(t.LocalPriority.Category),
		}
	}
	if t.AIPriority != nil {
		confidence := t.AIPriority.Confidence
		resp.AIPriority = &priorityResp{
			Score:      t.AIPriority.Score,
			Category:   string(t.AIPriority.Category),
			Reasoning:  t.AIPriority.Reasoning,
			Confidence: &confidence,
			Provider:   string(t.AIPriority.Provider),
		}
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

func (h *handler) newCreateResp(o task.CreateBulkOutput) createResp {
	return createResp{Tasks: newTaskResps(o.Tasks), Queued: o.Queued}
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	return listResp{Tasks: newTaskResps(tasks), Count: len(tasks)}
}

func (h *handler) newMatrixResp(m task.Matrix) matrixResp {
	out := make(matrixResp, len(m))
	for c, tasks := range m {
		out[string(c)] = newTaskResps(tasks)
	}
	return out
}
