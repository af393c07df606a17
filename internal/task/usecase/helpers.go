package usecase

import (
	"strings"

	"task-triage/internal/model"
)

// parseLines splits raw input into trimmed, non-empty lines.
func parseLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// needsAnalysis reports whether t has no remote assessment yet.
func needsAnalysis(t model.Task) bool {
	return t.AIPriority == nil
}

func ids(tasks []model.Task) map[string]struct{} {
	out := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		out[t.ID] = struct{}{}
	}
	return out
}
