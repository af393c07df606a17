package model

import "time"

// Category is a quadrant of the urgency/importance matrix.
type Category string

const (
	CategoryUrgentImportant    Category = "urgent-important"
	CategoryImportantNotUrgent Category = "important-not-urgent"
	CategoryUrgentNotImportant Category = "urgent-not-important"
	CategoryNeither            Category = "neither"
)

// Categories lists the quadrants in display order.
var Categories = []Category{
	CategoryUrgentImportant,
	CategoryImportantNotUrgent,
	CategoryUrgentNotImportant,
	CategoryNeither,
}

// Valid reports whether c is one of the four quadrants.
func (c Category) Valid() bool {
	switch c {
	case CategoryUrgentImportant, CategoryImportantNotUrgent, CategoryUrgentNotImportant, CategoryNeither:
		return true
	}
	return false
}

// Provider identifies a remote analysis backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// Providers lists the supported backends.
var Providers = []Provider{ProviderAnthropic, ProviderOpenAI, ProviderGemini}

// Valid reports whether p is a supported backend.
func (p Provider) Valid() bool {
	switch p {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
		return true
	}
	return false
}

// LocalPriority is the keyword-heuristic result, always present on stored tasks.
type LocalPriority struct {
	Score    int      `json:"score" yaml:"score"` // 1-10
	Category Category `json:"category" yaml:"category"`
}

// AIPriority is the remote backend result for a task.
type AIPriority struct {
	Score      int      `json:"score" yaml:"score"`
	Category   Category `json:"category" yaml:"category"`
	Reasoning  string   `json:"reasoning" yaml:"reasoning"`
	Confidence float64  `json:"confidence" yaml:"confidence"` // 0-1
	Provider   Provider `json:"provider" yaml:"provider"`
}

// Task is a single user-entered line of work.
type Task struct {
	ID            string         `json:"id" yaml:"id"`
	Text          string         `json:"text" yaml:"text"`
	CreatedAt     time.Time      `json:"created_at" yaml:"created_at"`
	LocalPriority *LocalPriority `json:"local_priority,omitempty" yaml:"local_priority,omitempty"`
	AIPriority    *AIPriority    `json:"ai_priority,omitempty" yaml:"ai_priority,omitempty"`
}

// EffectivePriority returns the AI result when present, otherwise the local one.
func (t Task) EffectivePriority() (score int, category Category) {
	if t.AIPriority != nil && t.AIPriority.Category.Valid() {
		return t.AIPriority.Score, t.AIPriority.Category
	}
	if t.LocalPriority != nil {
		return t.LocalPriority.Score, t.LocalPriority.Category
	}
	return 0, CategoryNeither
}
