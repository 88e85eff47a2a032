package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"streaming-analytics/internal/ingestors"
	"streaming-analytics/internal/models"
)

const maxBatchBytes = 2 * 1024 * 1024

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHttpHandlerFunc adapts a plain function to AppHttpHandler.
type AppHttpHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHttpHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

type ingestEventHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests. The body is either a batch object
// or a bare JSON array of events. Responds 202 with the per-event outcome;
// partial rejection is not an HTTP error.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if ct := contentType(r); ct != "" && !strings.Contains(strings.ToLower(ct), "json") {
		return errInvalidRequestBody("content type must be application/json", nil)
	}

	batch, err := h.parseBatch(r)
	if err != nil {
		return err
	}
	if batch.Source == "" {
		batch.Source = eventSource(r)
	}

	result, err := h.ingestionService.Ingest(r.Context(), batch)
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusAccepted, result)
}

func (h *ingestEventHandler) parseBatch(r *http.Request) (*models.EventBatch, error) {
	if r.Body == nil {
		return nil, errInvalidRequestBody("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxBatchBytes+1))
	if err != nil {
		return nil, errInvalidRequestBody("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errInvalidRequestBody("batch too large: must be <= 2MB", nil)
	}

	trimmed := strings.TrimLeftFunc(string(buf), func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if strings.HasPrefix(trimmed, "[") {
		var events []*models.Event
		if err := json.Unmarshal(buf, &events); err != nil {
			return nil, errInvalidRequestBody("invalid json", err)
		}
		return &models.EventBatch{Events: events}, nil
	}

	batch := &models.EventBatch{}
	if err := json.Unmarshal(buf, batch); err != nil {
		return nil, errInvalidRequestBody("invalid json", err)
	}
	return batch, nil
}
