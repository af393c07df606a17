package model

import "time"

// TaskAnalysis is one per-task entry of a backend response.
// Index is 1-based and refers to the task's position in the analyzed batch.
// Score is decoded as a float since backends sometimes answer 6.5.
type TaskAnalysis struct {
	Index      int      `json:"index"`
	Score      float64  `json:"score"`
	Category   Category `json:"category"`
	Reasoning  string   `json:"reasoning"`
	Confidence float64  `json:"confidence"`
}

// AnalysisResponse is the structured payload a backend is asked to return.
type AnalysisResponse struct {
	Tasks []TaskAnalysis `json:"tasks"`
}

// CachedResponse is a stored backend response keyed by batch hash.
type CachedResponse struct {
	Hash       string
	Response   AnalysisResponse
	CapturedAt time.Time
}
