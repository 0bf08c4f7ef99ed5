package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// EventKind classifies a board mutation in the history sidecar.
type EventKind string

const (
	EventAdd    EventKind = "add"
	EventDone   EventKind = "done"
	EventUndone EventKind = "undone"
	EventDelete EventKind = "delete"
	EventRename EventKind = "rename"
)

// Event is one recorded board mutation.
type Event struct {
	ID    int64
	At    time.Time
	Kind  EventKind
	Title string
}

// History is the append-only event log kept in a SQLite database next to
// the task file. The board treats it as best effort: append failures are
// logged and never interrupt the UI. It exists because the task file
// format has no room for timestamps.
type History struct {
	db *sql.DB
}

// HistoryPath derives the sidecar location from the task file path.
func HistoryPath(taskPath string) string {
	return taskPath + ".db"
}

// OpenHistory opens (creating if needed) the sidecar at path.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// WAL + busy_timeout keep a CLI invocation and an open board from
	// tripping over each other.
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		`CREATE TABLE IF NOT EXISTS events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			at_unixms INTEGER NOT NULL,
			kind      TEXT NOT NULL,
			title     TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS events_at ON events(at_unixms);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init history db: %w", err)
		}
	}
	return &History{db: db}, nil
}

// Append records one event with the current wall-clock time.
func (h *History) Append(ctx context.Context, kind EventKind, title string) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO events (at_unixms, kind, title) VALUES (?, ?, ?)`,
		time.Now().UnixMilli(), string(kind), title)
	if err != nil {
		return fmt.Errorf("append history event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, at_unixms, kind, title FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			ev Event
			ms int64
		)
		if err := rows.Scan(&ev.ID, &ms, (*string)(&ev.Kind), &ev.Title); err != nil {
			return nil, fmt.Errorf("scan history event: %w", err)
		}
		ev.At = time.UnixMilli(ms)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history events: %w", err)
	}
	return out, nil
}

func (h *History) Close() error {
	return h.db.Close()
}
