package models

// BucketSnapshot is the serialized form of one aggregation bucket, persisted
// as a materialized snapshot for warm restart. Slices holding set members are
// sorted so the encoding is deterministic.
type BucketSnapshot struct {
	BucketStart int64 `json:"bucketStart"` // unix seconds

	PlayCount           int64 `json:"playCount"`
	PauseCount          int64 `json:"pauseCount"`
	ErrorCount          int64 `json:"errorCount"`
	BufferUnderrunCount int64 `json:"bufferUnderrunCount"`

	ErrorsByType   map[ErrorType]int64  `json:"errorsByType"`
	TitlePlays     map[string]int64     `json:"titlePlays"`
	DeviceCounts   map[DeviceType]int64 `json:"deviceCounts"`
	PlatformCounts map[Platform]int64   `json:"platformCounts"`
	CountryCounts  map[string]int64     `json:"countryCounts"`

	Users        []string `json:"users"`
	SeenEventIDs []string `json:"seenEventIds"`

	ResponseTimeCounts  []int64 `json:"responseTimeCounts"`
	ResponseTimeSumMs   float64 `json:"responseTimeSumMs"`
	ResponseTimeSamples int64   `json:"responseTimeSamples"`

	MaxOffset int64 `json:"maxOffset"`
}
