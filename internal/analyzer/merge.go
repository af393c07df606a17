package analyzer

import (
	"math"

	"task-triage/internal/model"
)

// MapResponseToTasks attaches an AIPriority to each task whose 1-based
// position has a matching response entry. Other tasks are returned unchanged.
// Fractional scores are rounded half away from zero. The input slice is not
// modified.
func MapResponseToTasks(tasks []model.Task, resp *model.AnalysisResponse, provider model.Provider) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	if resp == nil {
		return out
	}

	byIndex := make(map[int]model.TaskAnalysis, len(resp.Tasks))
	for _, a := range resp.Tasks {
		if _, dup := byIndex[a.Index]; !dup {
			byIndex[a.Index] = a
		}
	}

	for i := range out {
		a, ok := byIndex[i+1]
		if !ok {
			continue
		}
		out[i].AIPriority = &model.AIPriority{
			Score:      int(math.Round(a.Score)),
			Category:   a.Category,
			Reasoning:  a.Reasoning,
			Confidence: a.Confidence,
			Provider:   provider,
		}
	}
	return out
}
