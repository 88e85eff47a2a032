package stores

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	seq      INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id TEXT NOT NULL UNIQUE,
	ts_ms    INTEGER NOT NULL,
	body     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_ts ON events (ts_ms);

CREATE TABLE IF NOT EXISTS bucket_snapshots (
	bucket_start INTEGER PRIMARY KEY,
	body         TEXT NOT NULL
);
`

// OpenDatabase opens (and migrates) the SQLite file backing both the event
// log and the snapshot store. WAL keeps readers off the writer's lock path.
func OpenDatabase(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errInternalStorage(fmt.Errorf("open database %q: %w", path, err))
	}
	// A single writer connection sidesteps SQLITE_BUSY on concurrent appends.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errInternalStorage(fmt.Errorf("apply schema: %w", err))
	}
	return db, nil
}
