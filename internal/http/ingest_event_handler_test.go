package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "streaming-analytics/internal/ingestors/mocks"
	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestEventHandler_Handle_BatchObject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventHandler(mockIngestionService)

	body := `{"batchId":"batch-1","source":"cdn-edge","events":[{"eventId":"ev-1","eventType":"play"}]}`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, batch *models.EventBatch) (*models.IngestResult, error) {
			assert.Equal(t, "batch-1", batch.BatchID)
			assert.Equal(t, "cdn-edge", batch.Source)
			assert.Len(t, batch.Events, 1)
			return &models.IngestResult{BatchID: "batch-1", Accepted: 1}, nil
		})

	err := handler.Handle(rr, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)

	var result models.IngestResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Accepted)
}

func TestIngestEventHandler_Handle_BareArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventHandler(mockIngestionService)

	body := `[{"eventId":"ev-1","eventType":"play"},{"eventId":"ev-2","eventType":"pause"}]`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	req.Header.Set(headerSource, "mobile-sdk")
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, batch *models.EventBatch) (*models.IngestResult, error) {
			assert.Equal(t, "mobile-sdk", batch.Source)
			assert.Len(t, batch.Events, 2)
			return &models.IngestResult{Accepted: 2}, nil
		})

	err := handler.Handle(rr, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestIngestEventHandler_Handle_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidRequestBody, svcErr.Code)
}

func TestIngestEventHandler_Handle_WrongContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`[]`)))
	req.Header.Set(headerContentType, "text/csv")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidRequestBody, svcErr.Code)
}

func TestIngestEventHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`[]`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("ING_1000", "event batch cannot be empty", nil)
	mockIngestionService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}
