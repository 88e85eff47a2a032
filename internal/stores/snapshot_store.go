package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"streaming-analytics/internal/models"
)

// SnapshotStore persists aggregator bucket snapshots for warm restarts.
// Save replaces the full set so a load always reflects one consistent
// shutdown.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Save(ctx context.Context, snapshots []*models.BucketSnapshot) error
	Load(ctx context.Context) ([]*models.BucketSnapshot, error)
}

type snapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) SnapshotStore {
	return &snapshotStore{db: db}
}

func (s *snapshotStore) Save(ctx context.Context, snapshots []*models.BucketSnapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errInternalStorage(fmt.Errorf("begin snapshot transaction: %w", err))
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM bucket_snapshots"); err != nil {
		return errInternalStorage(fmt.Errorf("clear previous snapshots: %w", err))
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO bucket_snapshots (bucket_start, body) VALUES (?, ?)")
	if err != nil {
		return errInternalStorage(fmt.Errorf("prepare snapshot insert: %w", err))
	}
	defer stmt.Close()

	for _, snapshot := range snapshots {
		body, err := json.Marshal(snapshot)
		if err != nil {
			return errInternalStorage(fmt.Errorf("marshal snapshot for bucket %d: %w", snapshot.BucketStart, err))
		}
		if _, err := stmt.ExecContext(ctx, snapshot.BucketStart, string(body)); err != nil {
			return errInternalStorage(fmt.Errorf("insert snapshot for bucket %d: %w", snapshot.BucketStart, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return errInternalStorage(fmt.Errorf("commit snapshot transaction: %w", err))
	}
	return nil
}

func (s *snapshotStore) Load(ctx context.Context) ([]*models.BucketSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT body FROM bucket_snapshots ORDER BY bucket_start ASC")
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("load snapshots: %w", err))
	}
	defer rows.Close()

	var snapshots []*models.BucketSnapshot
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, errInternalStorage(fmt.Errorf("scan snapshot row: %w", err))
		}
		snapshot := &models.BucketSnapshot{}
		if err := json.Unmarshal([]byte(body), snapshot); err != nil {
			return nil, errInternalStorage(fmt.Errorf("unmarshal snapshot: %w", err))
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, errInternalStorage(fmt.Errorf("iterate snapshot rows: %w", err))
	}
	return snapshots, nil
}
