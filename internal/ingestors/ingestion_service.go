package ingestors

import (
	"context"
	"fmt"
	"time"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/configs"
	"streaming-analytics/internal/shared/loggers"
	"streaming-analytics/internal/shared/metrics"
	"streaming-analytics/internal/shared/ulid"
	"streaming-analytics/internal/stores"
)

// EventPublisher hands committed events to the aggregation stream.
type EventPublisher interface {
	Produce(ctx context.Context, event *models.Event)
}

// PipelineProbe reports backpressure state owned by the generator pipeline.
type PipelineProbe interface {
	PendingEvents() int
	DroppedEvents() int64
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest validates, persists, and fans out one batch. Invalid events are
	// rejected individually; the rest of the batch still commits.
	Ingest(ctx context.Context, batch *models.EventBatch) (*models.IngestResult, error)
	// Health snapshots pipeline health for the dashboard.
	Health(ctx context.Context) *models.PipelineHealth
}

type ingestionService struct {
	validator *eventValidator
	dedupe    *dedupeCache
	tracker   *healthTracker

	eventLog stores.EventLogStore
	producer EventPublisher
	probe    PipelineProbe

	maxBatchSize  int
	appendRetries int
	retryBackoff  time.Duration

	now func() time.Time
}

func NewIngestionService(cfg configs.IngestionConfig, eventLog stores.EventLogStore, producer EventPublisher, probe PipelineProbe) IngestionService {
	return &ingestionService{
		validator:     newEventValidator(time.Duration(cfg.ClockSkewToleranceSeconds) * time.Second),
		dedupe:        newDedupeCache(time.Duration(cfg.DedupeWindowSeconds) * time.Second),
		tracker:       newHealthTracker(),
		eventLog:      eventLog,
		producer:      producer,
		probe:         probe,
		maxBatchSize:  cfg.MaxBatchSize,
		appendRetries: cfg.AppendRetries,
		retryBackoff:  time.Duration(cfg.RetryBackoffMs) * time.Millisecond,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *ingestionService) Ingest(ctx context.Context, batch *models.EventBatch) (*models.IngestResult, error) {
	if batch == nil || len(batch.Events) == 0 {
		svcErr := errValidationFailed("event batch cannot be empty", nil)
		metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	if len(batch.Events) > s.maxBatchSize {
		svcErr := errValidationFailed(fmt.Sprintf("batch too large: %d events, max %d", len(batch.Events), s.maxBatchSize), nil)
		metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	batchID := batch.BatchID
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldBatchID, batchID).
		Int("batch_events", len(batch.Events)).
		Msg("started ingesting event batch")

	accepted, rejected := s.screen(batch.Events)

	if len(accepted) > 0 {
		result, err := s.appendWithRetry(ctx, accepted)
		if err != nil {
			s.tracker.recordFailedBatch()
			svcErr := errInternalEventLogAppendFailed(err)
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}

		// Cache ids only once the append committed. Store-level duplicates
		// are persisted too, just from an earlier batch, so they count.
		committedAt := s.now()
		for _, event := range accepted {
			s.dedupe.record(event.EventID, committedAt)
		}

		// The log's unique constraint catches redeliveries that outlived the
		// in-memory dedupe window.
		accepted, rejected = rejectStoreDuplicates(accepted, rejected, result.Duplicates)

		for _, event := range accepted {
			s.producer.Produce(ctx, event)
		}
	}

	s.tracker.recordBatch(s.now(), len(accepted), len(rejected))
	metricEventsAcceptedTotal.Add(float64(len(accepted)))
	for _, r := range rejected {
		metricEventsRejectedTotal.WithLabelValues(string(r.Reason)).Inc()
	}
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	logger.Info().
		Str(loggers.FieldBatchID, batchID).
		Int("accepted", len(accepted)).
		Int("rejected", len(rejected)).
		Msg("event batch ingested")

	return &models.IngestResult{
		BatchID:  batchID,
		Accepted: len(accepted),
		Rejected: len(rejected),
		Reasons:  rejected,
	}, nil
}

func (s *ingestionService) Health(ctx context.Context) *models.PipelineHealth {
	health := s.tracker.snapshot(s.now())
	if s.probe != nil {
		health.PendingEvents = s.probe.PendingEvents()
		health.DroppedEvents = s.probe.DroppedEvents()
	}
	health.StorageHealthy = s.eventLog.Healthy(ctx)
	return &health
}

// screen validates every event, drops in-batch and recently seen duplicates,
// and splits the batch into accepted events and typed rejections.
func (s *ingestionService) screen(events []*models.Event) ([]*models.Event, []models.RejectedEvent) {
	now := s.now()
	accepted := make([]*models.Event, 0, len(events))
	var rejected []models.RejectedEvent

	inBatch := make(map[string]struct{}, len(events))
	for i, event := range events {
		if r := s.validator.validate(event, i); r != nil {
			rejected = append(rejected, *r)
			continue
		}
		if _, dup := inBatch[event.EventID]; dup {
			rejected = append(rejected, models.RejectedEvent{
				Index:   i,
				EventID: event.EventID,
				Reason:  models.RejectDuplicateEventID,
				Detail:  "event id repeated within the batch",
			})
			continue
		}
		if s.dedupe.seenRecently(event.EventID, now) {
			rejected = append(rejected, models.RejectedEvent{
				Index:   i,
				EventID: event.EventID,
				Reason:  models.RejectDuplicateEventID,
				Detail:  "event id seen in a recent batch",
			})
			continue
		}
		inBatch[event.EventID] = struct{}{}
		accepted = append(accepted, event)
	}
	return accepted, rejected
}

func (s *ingestionService) appendWithRetry(ctx context.Context, events []*models.Event) (*stores.AppendResult, error) {
	var lastErr error
	for attempt := 0; attempt < s.appendRetries; attempt++ {
		if attempt > 0 {
			metricAppendRetriesTotal.Inc()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retryBackoff * time.Duration(attempt)):
			}
		}

		result, err := s.eventLog.AppendBatch(ctx, events)
		if err == nil {
			return result, nil
		}
		lastErr = err
		loggers.Ctx(ctx).Warn().
			Err(err).
			Int("attempt", attempt+1).
			Msg("event log append failed, retrying")
	}
	return nil, lastErr
}

func rejectStoreDuplicates(accepted []*models.Event, rejected []models.RejectedEvent, duplicates []int) ([]*models.Event, []models.RejectedEvent) {
	if len(duplicates) == 0 {
		return accepted, rejected
	}

	dupSet := make(map[int]struct{}, len(duplicates))
	for _, idx := range duplicates {
		dupSet[idx] = struct{}{}
	}

	kept := make([]*models.Event, 0, len(accepted)-len(duplicates))
	for i, event := range accepted {
		if _, dup := dupSet[i]; dup {
			rejected = append(rejected, models.RejectedEvent{
				EventID: event.EventID,
				Reason:  models.RejectDuplicateEventID,
				Detail:  "event id already in the event log",
			})
			continue
		}
		kept = append(kept, event)
	}
	return kept, rejected
}
