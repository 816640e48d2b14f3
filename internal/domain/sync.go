package domain

import "time"

// Stage names one step of a pipeline run.
type Stage string

const (
	StageIdle            Stage = "IDLE"
	StageFetchingSources Stage = "FETCHING_SOURCES"
	StageTransforming    Stage = "TRANSFORMING"
	StageMerging         Stage = "MERGING"
	StageLoading         Stage = "LOADING"
	StagePublishing      Stage = "PUBLISHING"
	StageFailed          Stage = "FAILED"
)

// SkippedEatery records a static eatery dropped from a run.
type SkippedEatery struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Override records an upstream eatery replacing a static one with the same cornellId.
type Override struct {
	CornellID    int64  `json:"cornellId"`
	StaticName   string `json:"staticName"`
	UpstreamName string `json:"upstreamName"`
}

// SyncStats holds statistics about a pipeline run.
type SyncStats struct {
	RunID         string          `json:"runId"`
	Stage         Stage           `json:"stage"`
	StaticLoaded  int             `json:"staticLoaded"`
	StaticSkipped []SkippedEatery `json:"staticSkipped,omitempty"`
	FridgeItems   int             `json:"fridgeItems"`
	APIFetched    int             `json:"apiFetched"`
	Transformed   int             `json:"transformed"`
	Overrides     []Override      `json:"overrides,omitempty"`
	Inserted      int             `json:"inserted"`
	Published     int             `json:"published"`
	CacheTag      string          `json:"cacheTag,omitempty"`
	Timings       StageTimings    `json:"timings"`
	Duration      time.Duration   `json:"duration"`
}

type StageTimings struct {
	Static    time.Duration `json:"static"`
	Fridge    time.Duration `json:"fridge"`
	APIFetch  time.Duration `json:"apiFetch"`
	Transform time.Duration `json:"transform"`
	Database  time.Duration `json:"database"`
	Publish   time.Duration `json:"publish"`
}
