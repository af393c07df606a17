package scoring

import (
	"math"
	"strings"

	"task-triage/internal/model"
)

// Result is the outcome of scoring a single text.
type Result struct {
	Score    int
	Category model.Category
	// Urgency and Importance are the clamped 0-5 values the category is derived from.
	Urgency    int
	Importance int
}

// ScoreText scores free text. It is pure and total: any input yields a score
// in [1,10] and one of the four categories.
func ScoreText(text string) Result {
	lower := strings.ToLower(text)

	urgency := urgencyScore(text, lower)
	importance := importanceScore(text, lower)

	combined := (float64(urgency) + float64(importance)*importanceWeight) / combinedDivisor
	score := clamp(int(math.Round(combined*2)), minScore, maxScore)

	return Result{
		Score:      score,
		Category:   categorize(urgency, importance),
		Urgency:    urgency,
		Importance: importance,
	}
}

// ScoreTask returns the local priority for a task's text.
func ScoreTask(t model.Task) model.LocalPriority {
	r := ScoreText(t.Text)
	return model.LocalPriority{Score: r.Score, Category: r.Category}
}

// ScoreTasks returns copies of tasks with LocalPriority set.
func ScoreTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		lp := ScoreTask(t)
		t.LocalPriority = &lp
		out[i] = t
	}
	return out
}

func urgencyScore(text, lower string) int {
	score := countKeywords(lower, urgencyKeywords) * keywordWeight
	score += patternBonuses(text, urgencyPatterns)
	score -= countKeywords(lower, lowPriorityKeywords)
	return clamp(score, 0, maxRaw)
}

func importanceScore(text, lower string) int {
	score := countKeywords(lower, importanceKeywords) * keywordWeight
	score += patternBonuses(text, importancePatterns)
	score -= countKeywords(lower, lowPriorityKeywords)
	return clamp(score, 0, maxRaw)
}

// countKeywords counts every non-overlapping occurrence of every keyword.
func countKeywords(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(lower, kw)
	}
	return n
}

func patternBonuses(text string, patterns []patternBonus) int {
	bonus := 0
	for _, p := range patterns {
		if p.re.MatchString(text) {
			bonus += p.bonus
		}
	}
	return bonus
}

func categorize(urgency, importance int) model.Category {
	isUrgent := float64(urgency) >= urgentThreshold
	isImportant := float64(importance) >= importantThreshold

	switch {
	case isUrgent && isImportant:
		return model.CategoryUrgentImportant
	case isImportant:
		return model.CategoryImportantNotUrgent
	case isUrgent:
		return model.CategoryUrgentNotImportant
	default:
		return model.CategoryNeither
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
