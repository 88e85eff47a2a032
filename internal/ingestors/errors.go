package ingestors

import (
	"fmt"

	"streaming-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeInternalEventLogAppendFailed = "ING_9000"
)

// errValidationFailed returns an error for batch-level validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalEventLogAppendFailed returns an error when the event log append
// fails after exhausting retries.
func errInternalEventLogAppendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogAppendFailed, fmt.Errorf("eventLogAppendFailed: %w", cause))
}
