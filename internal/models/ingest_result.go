package models

// RejectReason classifies why a single event was rejected during ingestion.
// Rejections are per-event and recoverable; the rest of the batch proceeds.
type RejectReason string

const (
	RejectSchemaViolation   RejectReason = "schema_violation"
	RejectClockSkewTooLarge RejectReason = "clock_skew_too_large"
	RejectDuplicateEventID  RejectReason = "duplicate_event_id"
)

// RejectedEvent records one rejected event and why.
type RejectedEvent struct {
	Index   int          `json:"index"`
	EventID string       `json:"eventId,omitempty"`
	Reason  RejectReason `json:"reason"`
	Detail  string       `json:"detail,omitempty"`
}

// IngestResult is the outcome of one batch ingestion.
type IngestResult struct {
	BatchID  string          `json:"batchId"`
	Accepted int             `json:"accepted"`
	Rejected int             `json:"rejected"`
	Reasons  []RejectedEvent `json:"reasons,omitempty"`
}
