// Package journal persists the raw message traffic of a session for
// postmortem debugging of client/server divergence.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	DirectionInbound  = "in"
	DirectionOutbound = "out"
)

const schema = `
CREATE TABLE IF NOT EXISTS traffic (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp INTEGER NOT NULL,
	direction TEXT NOT NULL,
	tag TEXT NOT NULL,
	frame BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS traffic_timestamp ON traffic (timestamp);
`

// Entry is one journaled frame.
type Entry struct {
	ID        int64  `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Direction string `json:"direction"`
	Tag       string `json:"tag"`
	Frame     []byte `json:"frame"`
}

// Journal records message frames in a SQLite database.
type Journal struct {
	db *sql.DB
}

// NewJournal opens or creates the journal database at the given path.
// Use ":memory:" for an ephemeral journal.
func NewJournal(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}
	return &Journal{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores one frame.
func (j *Journal) Record(ctx context.Context, direction, tag string, frame []byte) error {
	q := `
	INSERT INTO traffic (timestamp, direction, tag, frame)
	VALUES (?, ?, ?, ?);
	`
	_, err := j.db.ExecContext(ctx, q, time.Now().UnixMilli(), direction, tag, frame)
	if err != nil {
		return fmt.Errorf("failed to insert frame: %v", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	q := `
	SELECT id, timestamp, direction, tag, frame FROM traffic
	ORDER BY id DESC LIMIT ?;
	`
	rows, err := j.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %v", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Direction, &e.Tag, &e.Frame); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %v", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frames: %v", err)
	}
	return entries, nil
}
