package models

import "time"

// EventType classifies a playback occurrence.
type EventType string

const (
	EventPlay           EventType = "play"
	EventPause          EventType = "pause"
	EventError          EventType = "error"
	EventBufferUnderrun EventType = "buffer_underrun"
)

// DeviceType classifies the viewing device.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
	DeviceSmartTV DeviceType = "smart_tv"
	DeviceConsole DeviceType = "console"
)

// Platform classifies the client application platform.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformRoku    Platform = "roku"
	PlatformFireTV  Platform = "firetv"
	PlatformAppleTV Platform = "appletv"
)

// ErrorType classifies a playback error. ErrorNone is used on non-error events.
type ErrorType string

const (
	ErrorNetwork        ErrorType = "network"
	ErrorPlayback       ErrorType = "playback"
	ErrorAuthentication ErrorType = "authentication"
	ErrorNone           ErrorType = "none"
)

// Event is one playback or error occurrence. Immutable once persisted;
// Offset is assigned by the event log on append and is zero before that.
//
// Invariants (enforced at ingestion):
//   - ErrorType != ErrorNone if and only if EventType == EventError
//   - ResponseTimeMs is present only for play and error events, and is >= 0
//   - Timestamp is never in the future beyond the clock-skew tolerance
type Event struct {
	Offset         int64      `json:"-"`
	EventID        string     `json:"eventId"`
	Timestamp      time.Time  `json:"timestamp"`
	EventType      EventType  `json:"eventType"`
	Title          string     `json:"title"`
	UserID         string     `json:"userId"`
	SessionID      string     `json:"sessionId,omitempty"`
	DeviceType     DeviceType `json:"deviceType"`
	Platform       Platform   `json:"platform"`
	Country        string     `json:"country"`
	Quality        string     `json:"quality,omitempty"`
	UserAgent      string     `json:"userAgent,omitempty"`
	Client         string     `json:"client,omitempty"` // normalized from UserAgent at ingestion
	ResponseTimeMs *float64   `json:"responseTimeMs,omitempty"`
	ErrorType      ErrorType  `json:"errorType,omitempty"`
}

// HasResponseTime reports whether the event carries a response time sample.
func (e *Event) HasResponseTime() bool {
	return e.ResponseTimeMs != nil
}

// IsError reports whether the event is a playback error.
func (e *Event) IsError() bool {
	return e.EventType == EventError
}

// EventBatch groups events ingested and committed together.
type EventBatch struct {
	BatchID string   `json:"batchId"`
	Source  string   `json:"source"`
	Events  []*Event `json:"events"`
}

// ValidEventTypes lists every accepted event type.
var ValidEventTypes = []EventType{EventPlay, EventPause, EventError, EventBufferUnderrun}

// ValidDeviceTypes lists every accepted device type.
var ValidDeviceTypes = []DeviceType{DeviceMobile, DeviceDesktop, DeviceTablet, DeviceSmartTV, DeviceConsole}

// ValidPlatforms lists every accepted platform.
var ValidPlatforms = []Platform{PlatformWeb, PlatformIOS, PlatformAndroid, PlatformRoku, PlatformFireTV, PlatformAppleTV}

// ValidErrorTypes lists every accepted error type for error events.
var ValidErrorTypes = []ErrorType{ErrorNetwork, ErrorPlayback, ErrorAuthentication}
