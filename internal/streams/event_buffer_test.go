package streams

import (
	"context"
	"testing"
	"time"

	"streaming-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBatch(n int) *models.EventBatch {
	events := make([]*models.Event, n)
	for i := range events {
		events[i] = &models.Event{EventID: "ev", EventType: models.EventPlay}
	}
	return &models.EventBatch{BatchID: "batch-1", Source: "generator", Events: events}
}

func TestEventBuffer_PublishAndNext(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(2)

	require.True(t, buffer.Publish(testBatch(3)))
	assert.Equal(t, 1, buffer.Len())

	batch, ok := buffer.Next(context.Background())
	require.True(t, ok)
	assert.Len(t, batch.Events, 3)
	assert.Equal(t, 0, buffer.Len())
}

func TestEventBuffer_FullBufferDropsAndCounts(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(1)

	require.True(t, buffer.Publish(testBatch(2)))
	assert.False(t, buffer.Publish(testBatch(5)))
	assert.False(t, buffer.Publish(testBatch(4)))

	assert.Equal(t, int64(9), buffer.DroppedEvents(), "drops are counted in events, not batches")
	assert.Equal(t, 1, buffer.Len())
}

func TestEventBuffer_NextHonorsContext(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	batch, ok := buffer.Next(ctx)
	assert.Nil(t, batch)
	assert.False(t, ok)
}

func TestEventBuffer_TryNextEmpty(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer(1)
	batch, ok := buffer.TryNext()
	assert.Nil(t, batch)
	assert.False(t, ok)
}
