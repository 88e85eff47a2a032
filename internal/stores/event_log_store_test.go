package stores

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"streaming-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func storedEvent(id string, ts time.Time) *models.Event {
	rt := 180.0
	return &models.Event{
		EventID:        id,
		Timestamp:      ts,
		EventType:      models.EventPlay,
		Title:          "The Matrix",
		UserID:         "user_1",
		SessionID:      "sess_1",
		DeviceType:     models.DeviceDesktop,
		Platform:       models.PlatformWeb,
		Country:        "US",
		Quality:        "1080p",
		ResponseTimeMs: &rt,
		ErrorType:      models.ErrorNone,
	}
}

func TestEventLogStore_AppendBatchAssignsIncreasingOffsets(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	events := []*models.Event{
		storedEvent("ev-1", base),
		storedEvent("ev-2", base.Add(time.Second)),
		storedEvent("ev-3", base.Add(2*time.Second)),
	}
	result, err := store.AppendBatch(context.Background(), events)
	require.NoError(t, err)

	assert.Empty(t, result.Duplicates)
	assert.Equal(t, int64(3), result.LastOffset)
	assert.Equal(t, int64(1), events[0].Offset)
	assert.Equal(t, int64(2), events[1].Offset)
	assert.Equal(t, int64(3), events[2].Offset)
}

func TestEventLogStore_AppendBatchSkipsDuplicateEventIDs(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	_, err := store.AppendBatch(context.Background(), []*models.Event{storedEvent("ev-1", base)})
	require.NoError(t, err)

	// ev-1 redelivered in a later batch alongside a fresh event.
	result, err := store.AppendBatch(context.Background(), []*models.Event{
		storedEvent("ev-1", base),
		storedEvent("ev-2", base.Add(time.Second)),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0}, result.Duplicates)
	assert.Equal(t, int64(2), result.LastOffset)

	events, err := store.ReadSince(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-1", events[0].EventID)
	assert.Equal(t, "ev-2", events[1].EventID)
}

func TestEventLogStore_ReadSincePagination(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	var batch []*models.Event
	for i := 0; i < 5; i++ {
		batch = append(batch, storedEvent("ev-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Second)))
	}
	_, err := store.AppendBatch(context.Background(), batch)
	require.NoError(t, err)

	page, err := store.ReadSince(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].Offset)
	assert.Equal(t, int64(2), page[1].Offset)

	page, err = store.ReadSince(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(3), page[0].Offset)

	page, err = store.ReadSince(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestEventLogStore_RoundTripPreservesFields(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	original := storedEvent("ev-1", base)
	original.EventType = models.EventError
	original.ErrorType = models.ErrorNetwork
	original.Client = "Chrome"
	_, err := store.AppendBatch(context.Background(), []*models.Event{original})
	require.NoError(t, err)

	events, err := store.ReadSince(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, original.EventID, got.EventID)
	assert.True(t, got.Timestamp.Equal(base))
	assert.Equal(t, models.EventError, got.EventType)
	assert.Equal(t, models.ErrorNetwork, got.ErrorType)
	assert.Equal(t, "Chrome", got.Client)
	require.NotNil(t, got.ResponseTimeMs)
	assert.Equal(t, 180.0, *got.ResponseTimeMs)
}

func TestEventLogStore_OffsetFor(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	_, err := store.AppendBatch(context.Background(), []*models.Event{
		storedEvent("ev-1", base),
		storedEvent("ev-2", base.Add(time.Minute)),
		storedEvent("ev-3", base.Add(2*time.Minute)),
	})
	require.NoError(t, err)

	offset, err := store.OffsetFor(context.Background(), base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), offset)

	// Before the oldest event: replay starts at the beginning.
	offset, err = store.OffsetFor(context.Background(), base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), offset)

	// After the newest event: replay is empty.
	offset, err = store.OffsetFor(context.Background(), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(4), offset)
}

func TestEventLogStore_OffsetFor_EmptyLog(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))

	offset, err := store.OffsetFor(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), offset)
}

func TestEventLogStore_RecentEventsNewestFirst(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	_, err := store.AppendBatch(context.Background(), []*models.Event{
		storedEvent("ev-1", base),
		storedEvent("ev-2", base.Add(time.Second)),
		storedEvent("ev-3", base.Add(2*time.Second)),
	})
	require.NoError(t, err)

	events, err := store.RecentEvents(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-3", events[0].EventID)
	assert.Equal(t, "ev-2", events[1].EventID)
}

func TestEventLogStore_PruneBeforeKeepsOffsets(t *testing.T) {
	t.Parallel()

	store := NewEventLogStore(openTestDatabase(t))
	base := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	_, err := store.AppendBatch(context.Background(), []*models.Event{
		storedEvent("ev-1", base),
		storedEvent("ev-2", base.Add(time.Hour)),
	})
	require.NoError(t, err)

	pruned, err := store.PruneBefore(context.Background(), base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	events, err := store.ReadSince(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-2", events[0].EventID)
	assert.Equal(t, int64(2), events[0].Offset, "pruning must not renumber surviving events")

	// New appends continue past the pruned range.
	result, err := store.AppendBatch(context.Background(), []*models.Event{storedEvent("ev-3", base.Add(2*time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.LastOffset)
}

func TestSnapshotStore_SaveReplacesAndLoads(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore(openTestDatabase(t))

	first := []*models.BucketSnapshot{
		{BucketStart: 100, PlayCount: 2, Users: []string{"user_1"}, SeenEventIDs: []string{"ev-1", "ev-2"}, MaxOffset: 2},
		{BucketStart: 110, PlayCount: 1, Users: []string{"user_2"}, SeenEventIDs: []string{"ev-3"}, MaxOffset: 3},
	}
	require.NoError(t, store.Save(context.Background(), first))

	second := []*models.BucketSnapshot{
		{BucketStart: 120, ErrorCount: 1, Users: []string{"user_3"}, SeenEventIDs: []string{"ev-4"}, MaxOffset: 4},
	}
	require.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, second[0], loaded[0])
}

func TestSnapshotStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore(openTestDatabase(t))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
