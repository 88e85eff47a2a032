package streams

import (
	"context"
	"sync"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/loggers"
)

// BatchIngestor validates, persists, and fans out one batch.
type BatchIngestor interface {
	Ingest(ctx context.Context, batch *models.EventBatch) (*models.IngestResult, error)
}

// PipelineRunner pulls generated batches off the buffer and feeds them to the
// ingestion service. Ingest failures are logged and counted; the runner keeps
// going so one bad batch cannot stall the pipeline.
type PipelineRunner struct {
	buffer   *EventBuffer
	ingestor BatchIngestor

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup

	logger loggers.Logger
}

func NewPipelineRunner(buffer *EventBuffer, ingestor BatchIngestor, logger loggers.Logger) *PipelineRunner {
	return &PipelineRunner{
		buffer:   buffer,
		ingestor: ingestor,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (r *PipelineRunner) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop drains batches already buffered, then waits for the runner goroutine.
func (r *PipelineRunner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *PipelineRunner) run(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			r.drain(ctx)
			return
		default:
		}

		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			r.drain(ctx)
			return
		case batch, ok := <-r.buffer.ch:
			if !ok {
				return
			}
			r.ingest(ctx, batch)
		}
	}
}

func (r *PipelineRunner) drain(ctx context.Context) {
	for {
		batch, ok := r.buffer.TryNext()
		if !ok {
			return
		}
		r.ingest(ctx, batch)
	}
}

func (r *PipelineRunner) ingest(ctx context.Context, batch *models.EventBatch) {
	ctx = r.logger.With().
		Str(loggers.FieldBatchID, batch.BatchID).
		Logger().WithContext(ctx)

	if _, err := r.ingestor.Ingest(ctx, batch); err != nil {
		loggers.Ctx(ctx).Error().
			Err(err).
			Int("batch_events", len(batch.Events)).
			Msg("generated batch ingestion failed")
	}
}
