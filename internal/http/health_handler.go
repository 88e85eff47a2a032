package http

import (
	"net/http"

	"streaming-analytics/internal/ingestors"
)

type healthHandler struct {
	ingestionService ingestors.IngestionService
}

func NewHealthHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &healthHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes GET /health requests. Degraded storage reports 503 so
// load balancers stop routing ingest traffic, but the body still carries the
// full health snapshot.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	health := h.ingestionService.Health(r.Context())

	status := http.StatusOK
	if !health.StorageHealthy {
		status = http.StatusServiceUnavailable
	}
	return writeJSONResponse(w, status, health)
}
