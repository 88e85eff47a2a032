package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "streaming-analytics/internal/ingestors/mocks"
	"streaming-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler_Healthy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewHealthHandler(mockIngestionService)

	mockIngestionService.EXPECT().
		Health(gomock.Any()).
		Return(&models.PipelineHealth{
			ThroughputPerSec: 42.5,
			AcceptedTotal:    2550,
			StorageHealthy:   true,
		})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)

	var health models.PipelineHealth
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, 42.5, health.ThroughputPerSec)
	assert.True(t, health.StorageHealthy)
}

func TestHealthHandler_DegradedStorage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewHealthHandler(mockIngestionService)

	mockIngestionService.EXPECT().
		Health(gomock.Any()).
		Return(&models.PipelineHealth{
			FailedBatches:  3,
			StorageHealthy: false,
		})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var health models.PipelineHealth
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, int64(3), health.FailedBatches)
	assert.False(t, health.StorageHealthy)
}
