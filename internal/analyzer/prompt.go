package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"task-triage/internal/model"
)

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// BuildPrompt enumerates tasks 1-indexed under the fixed category definitions.
func BuildPrompt(tasks []model.Task) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for i, t := range tasks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, t.Text)
	}
	sb.WriteByte('\n')
	sb.WriteString(promptFooter)
	return sb.String()
}

// ParseResponse decodes backend text into an AnalysisResponse. Markdown
// fences and chatter around the JSON object are tolerated; a missing
// "tasks" field is not.
func ParseResponse(text string) (*model.AnalysisResponse, error) {
	var raw struct {
		Tasks *[]model.TaskAnalysis `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseResponse, err)
	}
	if raw.Tasks == nil {
		return nil, fmt.Errorf("%w: missing tasks field", ErrParseResponse)
	}
	return &model.AnalysisResponse{Tasks: *raw.Tasks}, nil
}

// sanitizeJSONResponse strips markdown code fences and anything outside the
// outermost JSON value.
func sanitizeJSONResponse(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
