package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/loggers"
	"streaming-analytics/internal/shared/metrics"
	"streaming-analytics/internal/shared/svcerrors"
	"streaming-analytics/internal/shared/ulid"
)

// EventRecorder folds one event into live aggregate state.
type EventRecorder interface {
	Record(ctx context.Context, event *models.Event)
}

//go:generate mockgen -source=event_consumer.go -destination=./mocks/event_consumer_mock.go -package=mocks
type EventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type eventConsumer struct {
	queue    *PartitionedQueue[*models.Event]
	recorder EventRecorder

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewEventConsumer(queue *PartitionedQueue[*models.Event], recorder EventRecorder, logger loggers.Logger) EventConsumer {
	return &eventConsumer{
		queue:    queue,
		recorder: recorder,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Start spawns 1 worker goroutine per partition. Events for the same user
// land on the same partition, so a user's stream is folded in arrival order.
func (consumer *eventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *eventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *eventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan *models.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			consumer.drain(ctx, partitionIndex, ch)
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.consume(ctx, partitionIndex, event)
		}
	}
}

// drain folds everything already enqueued so a graceful shutdown does not
// lose committed events.
func (consumer *eventConsumer) drain(ctx context.Context, partitionIndex int, ch <-chan *models.Event) {
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.consume(ctx, partitionIndex, event)
		default:
			return
		}
	}
}

func (consumer *eventConsumer) consume(ctx context.Context, partitionIndex int, event *models.Event) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("event consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricEventsConsumedTotal.WithLabelValues(streamEvents, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)
	consumer.recorder.Record(ctx, event)
	metricEventsConsumedTotal.WithLabelValues(streamEvents, metrics.ValueNoError).Inc()
}
