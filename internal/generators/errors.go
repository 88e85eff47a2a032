package generators

import (
	"streaming-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidGeneratorConfig = "GEN_1000"
)

func errInvalidGeneratorConfig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidGeneratorConfig, "invalid generator configuration", cause)
}
