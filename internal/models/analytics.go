package models

import "time"

// MetricsSummary is the headline dashboard payload for one window.
type MetricsSummary struct {
	WindowSize        WindowSize `json:"windowSize"`
	WindowStart       time.Time  `json:"windowStart"`
	WindowEnd         time.Time  `json:"windowEnd"`
	PlaysPerMinute    float64    `json:"playsPerMinute"`
	ErrorRate         float64    `json:"errorRate"` // percentage of all events
	ActiveUsers       int64      `json:"activeUsers"`
	AvgResponseTimeMs float64    `json:"avgResponseTimeMs"`
	TotalPlays        int64      `json:"totalPlays"`
	TotalErrors       int64      `json:"totalErrors"`
	TotalEvents       int64      `json:"totalEvents"`
}

// TitleCount is one entry of a top-titles ranking.
type TitleCount struct {
	Title      string  `json:"title"`
	PlayCount  int64   `json:"playCount"`
	Percentage float64 `json:"percentage"` // share of all plays in the window
}

// ErrorBreakdown reports error volume by type for one window.
type ErrorBreakdown struct {
	WindowSize  WindowSize          `json:"windowSize"`
	TotalErrors int64               `json:"totalErrors"`
	TotalEvents int64               `json:"totalEvents"`
	ErrorRate   float64             `json:"errorRate"`
	ByType      map[ErrorType]int64 `json:"byType"`
}

// GeoDistribution reports event volume by country for one window.
type GeoDistribution struct {
	WindowSize WindowSize       `json:"windowSize"`
	Countries  map[string]int64 `json:"countries"`
}

// DevicePlatformStats reports event volume by device and platform for one window.
type DevicePlatformStats struct {
	WindowSize WindowSize           `json:"windowSize"`
	Devices    map[DeviceType]int64 `json:"devices"`
	Platforms  map[Platform]int64   `json:"platforms"`
}
