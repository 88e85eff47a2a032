package ingestors

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"streaming-analytics/internal/models"

	"github.com/mileusna/useragent"
)

const (
	maxTitleLen     = 256
	maxUserAgentLen = 1024
)

// eventValidator normalizes and validates single events. Every failure maps
// to a typed reject reason so callers can report partial-batch outcomes.
type eventValidator struct {
	clockSkewTolerance time.Duration
	now                func() time.Time
}

func newEventValidator(clockSkewTolerance time.Duration) *eventValidator {
	return &eventValidator{
		clockSkewTolerance: clockSkewTolerance,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// validate normalizes the event in place and returns a nil reject when the
// event is acceptable.
func (v *eventValidator) validate(event *models.Event, index int) *models.RejectedEvent {
	v.normalize(event)

	if reason, detail := v.check(event); reason != "" {
		return &models.RejectedEvent{
			Index:   index,
			EventID: event.EventID,
			Reason:  reason,
			Detail:  detail,
		}
	}
	return nil
}

func (v *eventValidator) normalize(event *models.Event) {
	event.EventID = strings.TrimSpace(event.EventID)
	event.Title = strings.TrimSpace(event.Title)
	event.UserID = strings.TrimSpace(event.UserID)
	event.Country = strings.ToUpper(strings.TrimSpace(event.Country))
	event.UserAgent = strings.TrimSpace(event.UserAgent)
	if event.ErrorType == "" {
		event.ErrorType = models.ErrorNone
	}
	if event.UserAgent != "" && event.Client == "" {
		ua := useragent.Parse(event.UserAgent)
		event.Client = ua.Name
	}
}

func (v *eventValidator) check(event *models.Event) (models.RejectReason, string) {
	if event.EventID == "" {
		return models.RejectSchemaViolation, "eventId is required"
	}
	if event.Timestamp.IsZero() {
		return models.RejectSchemaViolation, "timestamp is required"
	}
	if event.Timestamp.After(v.now().Add(v.clockSkewTolerance)) {
		return models.RejectClockSkewTooLarge,
			fmt.Sprintf("timestamp %s is beyond the %s skew tolerance", event.Timestamp.Format(time.RFC3339), v.clockSkewTolerance)
	}
	if !slices.Contains(models.ValidEventTypes, event.EventType) {
		return models.RejectSchemaViolation, fmt.Sprintf("unknown event type %q", event.EventType)
	}
	if event.Title == "" {
		return models.RejectSchemaViolation, "title is required"
	}
	if len(event.Title) > maxTitleLen {
		return models.RejectSchemaViolation, fmt.Sprintf("title too long: max %d characters", maxTitleLen)
	}
	if event.UserID == "" {
		return models.RejectSchemaViolation, "userId is required"
	}
	if !slices.Contains(models.ValidDeviceTypes, event.DeviceType) {
		return models.RejectSchemaViolation, fmt.Sprintf("unknown device type %q", event.DeviceType)
	}
	if !slices.Contains(models.ValidPlatforms, event.Platform) {
		return models.RejectSchemaViolation, fmt.Sprintf("unknown platform %q", event.Platform)
	}
	if event.Country == "" {
		return models.RejectSchemaViolation, "country is required"
	}
	if len(event.UserAgent) > maxUserAgentLen {
		return models.RejectSchemaViolation, fmt.Sprintf("userAgent too long: max %d characters", maxUserAgentLen)
	}

	if event.IsError() {
		if !slices.Contains(models.ValidErrorTypes, event.ErrorType) {
			return models.RejectSchemaViolation, fmt.Sprintf("error events require a known error type, got %q", event.ErrorType)
		}
	} else if event.ErrorType != models.ErrorNone {
		return models.RejectSchemaViolation, fmt.Sprintf("error type %q is only valid on error events", event.ErrorType)
	}

	if event.HasResponseTime() {
		if event.EventType != models.EventPlay && event.EventType != models.EventError {
			return models.RejectSchemaViolation, "responseTimeMs is only valid on play and error events"
		}
		if *event.ResponseTimeMs < 0 {
			return models.RejectSchemaViolation, fmt.Sprintf("responseTimeMs must be >= 0, got %g", *event.ResponseTimeMs)
		}
	}

	return "", ""
}
