// Package persistence provides SQLite-based snapshot storage for game state.
// The core never performs I/O itself; it hands serializable snapshots to
// this layer and accepts them back for LoadGame.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/chalkboard/internal/sim"
)

// schemaVersion is stored with every snapshot so future readers can default
// fields that older saves lack.
const schemaVersion = 1

// DB wraps a SQLite connection for snapshot persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		week INTEGER NOT NULL,
		school_day INTEGER NOT NULL,
		schema_version INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS day_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		school_day INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id, id);
	CREATE INDEX IF NOT EXISTS idx_day_log_run ON day_log(run_id, school_day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot writes a full game-state snapshot.
func (db *DB) SaveSnapshot(state sim.GameState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = db.conn.Exec(
		`INSERT INTO snapshots (run_id, week, school_day, schema_version, state_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		state.RunID, state.Turn.Week, state.Year.CurrentDay,
		schemaVersion, string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// LoadLatest restores the most recent snapshot across all runs.
// ok is false when the database holds no snapshots.
func (db *DB) LoadLatest() (state sim.GameState, ok bool, err error) {
	var blob string
	err = db.conn.Get(&blob, "SELECT state_json FROM snapshots ORDER BY id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return sim.GameState{}, false, nil
	}
	if err != nil {
		return sim.GameState{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return sim.GameState{}, false, fmt.Errorf("unmarshal state: %w", err)
	}
	return state, true, nil
}

// SnapshotCount returns the number of stored snapshots.
func (db *DB) SnapshotCount() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM snapshots")
	return n, err
}

// DayLogEntry is one recorded occurrence for the inspect tooling.
type DayLogEntry struct {
	RunID       string `db:"run_id" json:"run_id"`
	SchoolDay   int    `db:"school_day" json:"school_day"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
}

// RecordDayLog appends entries to the day log.
func (db *DB) RecordDayLog(entries []DayLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.Exec(
			"INSERT INTO day_log (run_id, school_day, description, category) VALUES (?, ?, ?, ?)",
			e.RunID, e.SchoolDay, e.Description, e.Category,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// RecentDayLog returns the most recent N day-log entries.
func (db *DB) RecentDayLog(limit int) ([]DayLogEntry, error) {
	var entries []DayLogEntry
	err := db.conn.Select(&entries,
		"SELECT run_id, school_day, description, category FROM day_log ORDER BY id DESC LIMIT ?",
		limit,
	)
	return entries, err
}
