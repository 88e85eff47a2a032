package streams

import (
	"context"
	"sync/atomic"

	"streaming-analytics/internal/models"
)

// EventBuffer decouples the generator from the ingestion pipeline with a
// bounded channel. Publish never blocks: when the pipeline falls behind, new
// batches are dropped and counted instead of stalling the producer.
type EventBuffer struct {
	ch            chan *models.EventBatch
	droppedEvents atomic.Int64
}

func NewEventBuffer(size int) *EventBuffer {
	return &EventBuffer{ch: make(chan *models.EventBatch, size)}
}

func (b *EventBuffer) Publish(batch *models.EventBatch) bool {
	select {
	case b.ch <- batch:
		metricBufferDepth.Set(float64(len(b.ch)))
		return true
	default:
		b.droppedEvents.Add(int64(len(batch.Events)))
		metricBufferDroppedEventsTotal.Add(float64(len(batch.Events)))
		return false
	}
}

// Next blocks until a batch is available, the buffer closes, or the context
// ends. A nil batch with ok=false means no more batches will arrive.
func (b *EventBuffer) Next(ctx context.Context) (*models.EventBatch, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case batch, ok := <-b.ch:
		metricBufferDepth.Set(float64(len(b.ch)))
		return batch, ok
	}
}

// TryNext receives without blocking, for drain loops during shutdown.
func (b *EventBuffer) TryNext() (*models.EventBatch, bool) {
	select {
	case batch, ok := <-b.ch:
		return batch, ok
	default:
		return nil, false
	}
}

func (b *EventBuffer) Len() int {
	return len(b.ch)
}

func (b *EventBuffer) DroppedEvents() int64 {
	return b.droppedEvents.Load()
}

func (b *EventBuffer) Close() {
	close(b.ch)
}
