package aggregators

import (
	"fmt"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/svcerrors"
)

const (
	codeUnsupportedWindow = "AGG_1000"

	codeInternalReplayFailed   = "AGG_9000"
	codeInternalEventLogFailed = "AGG_9001"
)

// errUnsupportedWindow returns an error for queries naming a window size
// outside the tracked catalog.
func errUnsupportedWindow(window models.WindowSize) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedWindow,
		fmt.Sprintf("unsupported window size: %q", window), nil)
}

// errInternalReplayFailed returns an error when rebuilding from the event log fails.
func errInternalReplayFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReplayFailed, fmt.Errorf("eventLogReplayFailed: %w", cause))
}

// errInternalEventLogFailed returns an error when an event log read fails.
func errInternalEventLogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogFailed, fmt.Errorf("eventLogReadFailed: %w", cause))
}
