package stores

import (
	"streaming-analytics/internal/shared/svcerrors"
)

const (
	codeInternalStorage = "STO_9000"
)

func errInternalStorage(cause error) error {
	return svcerrors.NewInternalError(codeInternalStorage, cause)
}
