package http

import (
	"streaming-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody = "API_1000"
	codeInvalidQueryParam  = "API_1001"
)

func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}

func errInvalidQueryParam(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, msg, cause)
}
