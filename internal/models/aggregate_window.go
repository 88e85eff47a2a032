package models

import "time"

// AggregateWindow is the derived rollup of every event whose timestamp falls
// inside [WindowStart, WindowEnd). It is a snapshot computed from live bucket
// state; the event log remains the source of truth and any window can be
// rebuilt from it.
type AggregateWindow struct {
	WindowSize  WindowSize `json:"windowSize"`
	WindowStart time.Time  `json:"windowStart"`
	WindowEnd   time.Time  `json:"windowEnd"`

	PlayCount           int64 `json:"playCount"`
	PauseCount          int64 `json:"pauseCount"`
	ErrorCount          int64 `json:"errorCount"`
	BufferUnderrunCount int64 `json:"bufferUnderrunCount"`
	TotalEvents         int64 `json:"totalEvents"`
	ActiveUsers         int64 `json:"activeUsers"`

	ErrorCountByType map[ErrorType]int64  `json:"errorCountByType"`
	TitlePlayCounts  map[string]int64     `json:"titlePlayCounts"`
	DeviceCounts     map[DeviceType]int64 `json:"deviceCounts"`
	PlatformCounts   map[Platform]int64   `json:"platformCounts"`
	CountryCounts    map[string]int64     `json:"countryCounts"`

	ResponseTimes ResponseTimeStats `json:"responseTimes"`
}

// ResponseTimeStats summarizes the response-time samples of a window.
// Percentiles come from a fixed-bound histogram and are deterministic for a
// given set of samples regardless of arrival order.
type ResponseTimeStats struct {
	SampleCount int64   `json:"sampleCount"`
	AvgMs       float64 `json:"avgMs"`
	P50Ms       float64 `json:"p50Ms"`
	P95Ms       float64 `json:"p95Ms"`
	P99Ms       float64 `json:"p99Ms"`
}
