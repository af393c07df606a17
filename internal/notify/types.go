package notify

import (
	"context"
	"time"

	"task-triage/internal/model"
)

// EventType names one of the events emitted by the pipeline.
type EventType string

const (
	EventTasksAdded       EventType = "tasks-added"
	EventProcessingError  EventType = "processing-error"
	EventAnalysisComplete EventType = "ai-analysis-complete"
)

// Event is a pipeline notification for UI consumers. For
// EventAnalysisComplete, Tasks is the batch as submitted and aligns with
// Response indices; Updated holds the records actually saved.
type Event struct {
	Type     EventType               `json:"type"`
	At       time.Time               `json:"at"`
	Tasks    []model.Task            `json:"tasks,omitempty"`
	Updated  []model.Task            `json:"updated,omitempty"`
	Response *model.AnalysisResponse `json:"response,omitempty"`
	Provider model.Provider          `json:"provider,omitempty"`
	Message  string                  `json:"message,omitempty"`
}

// Publisher accepts events. Publish never blocks.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}
