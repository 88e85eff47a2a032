package generators

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/loggers"
)

// BatchSink receives generated batches. Publish returns false when the sink
// is full and the batch was dropped.
type BatchSink interface {
	Publish(batch *models.EventBatch) bool
}

// Runner paces a Generator, emitting batches into the sink at the configured
// rate. When the sink cannot keep up, batches are dropped and counted rather
// than blocking the producer.
type Runner struct {
	generator *Generator
	sink      BatchSink

	flushInterval time.Duration
	eventsPerTick int
	maxBatchSize  int

	droppedBatches atomic.Int64

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewRunner(generator *Generator, sink BatchSink) *Runner {
	interval := time.Duration(generator.cfg.FlushIntervalMs) * time.Millisecond
	perTick := int(float64(generator.cfg.Rate) * interval.Seconds())
	if perTick < 1 {
		perTick = 1
	}
	return &Runner{
		generator:     generator,
		sink:          sink,
		flushInterval: interval,
		eventsPerTick: perTick,
		maxBatchSize:  generator.cfg.BatchSize,
		stopCh:        make(chan struct{}),
	}
}

func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop halts generation and waits for the producer goroutine to exit.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
}

// DroppedBatches returns the number of batches the sink refused. The sink
// owns the per-event drop count.
func (r *Runner) DroppedBatches() int64 {
	return r.droppedBatches.Load()
}

func (r *Runner) run(ctx context.Context) {
	defer r.wg.Done()

	logger := loggers.Ctx(ctx)
	logger.Info().
		Int("events_per_tick", r.eventsPerTick).
		Dur("flush_interval", r.flushInterval).
		Msg("event generator started")

	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			logger.Info().Int64("dropped_batches", r.droppedBatches.Load()).Msg("event generator stopped")
			return
		case <-ticker.C:
			r.emit()
		}
	}
}

func (r *Runner) emit() {
	remaining := r.eventsPerTick
	for remaining > 0 {
		size := remaining
		if size > r.maxBatchSize {
			size = r.maxBatchSize
		}
		batch := r.generator.NextBatch(size)
		if !r.sink.Publish(batch) {
			r.droppedBatches.Add(1)
			metricBatchesDroppedTotal.Inc()
		}
		remaining -= size
	}
}
