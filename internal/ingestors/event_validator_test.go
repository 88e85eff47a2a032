package ingestors

import (
	"testing"
	"time"

	"streaming-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *eventValidator {
	v := newEventValidator(30 * time.Second)
	v.now = func() time.Time { return time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC) }
	return v
}

func baseEvent() *models.Event {
	rt := 300.0
	return &models.Event{
		EventID:        "ev-1",
		Timestamp:      time.Date(2026, 3, 14, 17, 59, 0, 0, time.UTC),
		EventType:      models.EventPlay,
		Title:          "The Matrix",
		UserID:         "user_1",
		DeviceType:     models.DeviceMobile,
		Platform:       models.PlatformIOS,
		Country:        "us",
		ResponseTimeMs: &rt,
	}
}

func TestEventValidator_AcceptsAndNormalizes(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	event := baseEvent()
	event.Title = "  The Matrix  "
	event.UserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"

	reject := v.validate(event, 0)
	require.Nil(t, reject)

	assert.Equal(t, "The Matrix", event.Title)
	assert.Equal(t, "US", event.Country)
	assert.Equal(t, models.ErrorNone, event.ErrorType)
	assert.NotEmpty(t, event.Client, "user agent must be normalized to a client name")
}

func TestEventValidator_SchemaViolations(t *testing.T) {
	t.Parallel()

	negative := -5.0
	pauseRT := 100.0

	tests := []struct {
		name   string
		mutate func(*models.Event)
	}{
		{"missing event id", func(e *models.Event) { e.EventID = "" }},
		{"missing timestamp", func(e *models.Event) { e.Timestamp = time.Time{} }},
		{"unknown event type", func(e *models.Event) { e.EventType = "seek" }},
		{"missing title", func(e *models.Event) { e.Title = "   " }},
		{"missing user id", func(e *models.Event) { e.UserID = "" }},
		{"unknown device", func(e *models.Event) { e.DeviceType = "fridge" }},
		{"unknown platform", func(e *models.Event) { e.Platform = "symbian" }},
		{"missing country", func(e *models.Event) { e.Country = "" }},
		{"negative response time", func(e *models.Event) { e.ResponseTimeMs = &negative }},
		{"response time on pause", func(e *models.Event) {
			e.EventType = models.EventPause
			e.ResponseTimeMs = &pauseRT
		}},
		{"error type on play", func(e *models.Event) { e.ErrorType = models.ErrorNetwork }},
		{"error event without error type", func(e *models.Event) {
			e.EventType = models.EventError
			e.ErrorType = models.ErrorNone
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event := baseEvent()
			tt.mutate(event)

			reject := newTestValidator().validate(event, 3)
			require.NotNil(t, reject)
			assert.Equal(t, models.RejectSchemaViolation, reject.Reason)
			assert.Equal(t, 3, reject.Index)
		})
	}
}

func TestEventValidator_ClockSkew(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	// Within tolerance: accepted.
	event := baseEvent()
	event.Timestamp = v.now().Add(20 * time.Second)
	assert.Nil(t, v.validate(event, 0))

	// Beyond tolerance: typed rejection.
	event = baseEvent()
	event.Timestamp = v.now().Add(5 * time.Minute)
	reject := v.validate(event, 0)
	require.NotNil(t, reject)
	assert.Equal(t, models.RejectClockSkewTooLarge, reject.Reason)
}

func TestEventValidator_ErrorEvent(t *testing.T) {
	t.Parallel()

	event := baseEvent()
	event.EventType = models.EventError
	event.ErrorType = models.ErrorPlayback

	assert.Nil(t, newTestValidator().validate(event, 0))
}

func TestDedupeCache_WindowExpiry(t *testing.T) {
	t.Parallel()

	cache := newDedupeCache(time.Minute)
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	assert.False(t, cache.seenRecently("ev-1", now))
	cache.record("ev-1", now)
	assert.True(t, cache.seenRecently("ev-1", now.Add(30*time.Second)))
	assert.False(t, cache.seenRecently("ev-1", now.Add(3*time.Minute)), "entries past the window are forgotten")
}
