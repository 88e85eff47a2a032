package streams

import (
	"context"

	"streaming-analytics/internal/models"
)

// EventProducer publishes committed events onto the partitioned queue for
// aggregation.
//
// Partition key is the user id: all events of one user land on the same
// partition and are folded in arrival order, while different users spread
// across partitions for parallelism. Delivery is at least once; the
// aggregator drops redeliveries by event id.
//
//go:generate mockgen -source=event_producer.go -destination=./mocks/event_producer_mock.go -package=mocks
type EventProducer interface {
	Produce(ctx context.Context, event *models.Event)
}

type eventProducer struct {
	queue *PartitionedQueue[*models.Event]
}

func NewEventProducer(queue *PartitionedQueue[*models.Event]) EventProducer {
	return &eventProducer{queue: queue}
}

func (producer *eventProducer) Produce(_ context.Context, event *models.Event) {
	producer.queue.Publish(event.UserID, event)
	metricEventsPublishedTotal.WithLabelValues(streamEvents).Inc()
}
