package models

import "time"

// PipelineHealth is a point-in-time snapshot of ingestion pipeline health,
// read by the dashboard. All fields are computed from trailing windows; they
// are never reset by readers.
type PipelineHealth struct {
	LastBatchAt      time.Time `json:"lastBatchAt"`
	LagSeconds       float64   `json:"lagSeconds"`       // since last successful batch
	ThroughputPerSec float64   `json:"throughputPerSec"` // accepted events/sec, trailing minute
	ErrorRate        float64   `json:"errorRate"`        // rejected/total, trailing window
	AcceptedTotal    int64     `json:"acceptedTotal"`
	RejectedTotal    int64     `json:"rejectedTotal"`
	DroppedEvents    int64     `json:"droppedEvents"` // generator backpressure drops
	PendingEvents    int       `json:"pendingEvents"` // buffered, not yet ingested
	FailedBatches    int64     `json:"failedBatches"` // storage retries exhausted
	StorageHealthy   bool      `json:"storageHealthy"`
}
