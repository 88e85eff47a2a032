package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"streaming-analytics/internal/models"

	"github.com/mattn/go-sqlite3"
)

// AppendResult reports the outcome of a batch append. Duplicates holds the
// indices of input events whose event_id was already present in the log.
type AppendResult struct {
	LastOffset int64
	Duplicates []int
}

// EventLogStore persists events in an append-only SQLite table. The rowid
// sequence doubles as the event offset: strictly increasing, never reused,
// assigned at commit time.
//
//go:generate mockgen -source=event_log_store.go -destination=./mocks/event_log_store_mock.go -package=mocks
type EventLogStore interface {
	AppendBatch(ctx context.Context, events []*models.Event) (*AppendResult, error)
	ReadSince(ctx context.Context, afterOffset int64, limit int) ([]*models.Event, error)
	OffsetFor(ctx context.Context, t time.Time) (int64, error)
	RecentEvents(ctx context.Context, limit int) ([]*models.Event, error)
	PruneBefore(ctx context.Context, horizon time.Time) (int64, error)
	Healthy(ctx context.Context) bool
}

type eventLogStore struct {
	db *sql.DB
}

func NewEventLogStore(db *sql.DB) EventLogStore {
	return &eventLogStore{db: db}
}

// AppendBatch writes the batch in a single transaction. Rows colliding on
// event_id are skipped and reported in the result; the rest of the batch
// still commits. On success every accepted event has its Offset populated.
func (s *eventLogStore) AppendBatch(ctx context.Context, events []*models.Event) (*AppendResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("begin append transaction: %w", err))
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO events (event_id, ts_ms, body) VALUES (?, ?, ?)")
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("prepare insert: %w", err))
	}
	defer stmt.Close()

	result := &AppendResult{}
	for i, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return nil, errInternalStorage(fmt.Errorf("marshal event %q: %w", event.EventID, err))
		}

		res, err := stmt.ExecContext(ctx, event.EventID, event.Timestamp.UTC().UnixMilli(), string(body))
		if err != nil {
			if isUniqueViolation(err) {
				result.Duplicates = append(result.Duplicates, i)
				continue
			}
			return nil, errInternalStorage(fmt.Errorf("insert event %q: %w", event.EventID, err))
		}

		offset, err := res.LastInsertId()
		if err != nil {
			return nil, errInternalStorage(fmt.Errorf("read offset for event %q: %w", event.EventID, err))
		}
		event.Offset = offset
		result.LastOffset = offset
	}

	if err := tx.Commit(); err != nil {
		return nil, errInternalStorage(fmt.Errorf("commit append transaction: %w", err))
	}

	metricStorageAppendsTotal.Inc()
	return result, nil
}

// ReadSince returns up to limit events with offset strictly greater than
// afterOffset, in offset order.
func (s *eventLogStore) ReadSince(ctx context.Context, afterOffset int64, limit int) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, body FROM events WHERE seq > ? ORDER BY seq ASC LIMIT ?", afterOffset, limit)
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("read events since offset %d: %w", afterOffset, err))
	}
	defer rows.Close()

	return scanEvents(rows)
}

// OffsetFor returns the offset of the first event with timestamp >= t. When
// no such event exists, it returns one past the newest offset so a replay
// from the result is an empty replay.
func (s *eventLogStore) OffsetFor(ctx context.Context, t time.Time) (int64, error) {
	var offset sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MIN(seq) FROM events WHERE ts_ms >= ?", t.UTC().UnixMilli()).Scan(&offset)
	if err != nil {
		return 0, errInternalStorage(fmt.Errorf("locate offset for %s: %w", t.Format(time.RFC3339), err))
	}
	if offset.Valid {
		return offset.Int64, nil
	}

	var maxOffset sql.NullInt64
	err = s.db.QueryRowContext(ctx, "SELECT MAX(seq) FROM events").Scan(&maxOffset)
	if err != nil {
		return 0, errInternalStorage(fmt.Errorf("locate newest offset: %w", err))
	}
	return maxOffset.Int64 + 1, nil
}

// RecentEvents returns the newest limit events, newest first.
func (s *eventLogStore) RecentEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, body FROM events ORDER BY seq DESC LIMIT ?", limit)
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("read recent events: %w", err))
	}
	defer rows.Close()

	return scanEvents(rows)
}

// PruneBefore deletes events older than the horizon and returns the number
// of rows removed. Offsets of surviving events are unaffected.
func (s *eventLogStore) PruneBefore(ctx context.Context, horizon time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE ts_ms < ?", horizon.UTC().UnixMilli())
	if err != nil {
		return 0, errInternalStorage(fmt.Errorf("prune events before %s: %w", horizon.Format(time.RFC3339), err))
	}
	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, errInternalStorage(fmt.Errorf("count pruned events: %w", err))
	}
	metricStoragePrunedEventsTotal.Add(float64(pruned))
	return pruned, nil
}

func (s *eventLogStore) Healthy(ctx context.Context) bool {
	return s.db.PingContext(ctx) == nil
}

func scanEvents(rows *sql.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		var (
			seq  int64
			body string
		)
		if err := rows.Scan(&seq, &body); err != nil {
			return nil, errInternalStorage(fmt.Errorf("scan event row: %w", err))
		}

		event := &models.Event{}
		if err := json.Unmarshal([]byte(body), event); err != nil {
			return nil, errInternalStorage(fmt.Errorf("unmarshal event at offset %d: %w", seq, err))
		}
		event.Offset = seq
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, errInternalStorage(fmt.Errorf("iterate event rows: %w", err))
	}
	return events, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
