// Package chronicle provides an append-only SQLite journal of simulation
// events (wars, battles, annexations, treaties) for the presentation
// layer. It records history; it is not save/load; simulation state never
// round-trips through it.
package chronicle

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hegemony/internal/engine"
)

// DB wraps a SQLite connection for the event journal.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a journal at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the journal.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_hour REAL NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_hour ON events(game_hour);
	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// AppendEvent writes one event. Satisfies engine.Journal.
func (db *DB) AppendEvent(e engine.Event) error {
	_, err := db.conn.Exec(
		"INSERT INTO events (game_hour, category, description) VALUES (?, ?, ?)",
		e.Hour, e.Category, e.Description,
	)
	return err
}

// AppendEvents writes a batch in one transaction.
func (db *DB) AppendEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (game_hour, category, description) VALUES (?, ?, ?)",
			e.Hour, e.Category, e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Recent returns the most recent N events, newest first.
func (db *DB) Recent(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT game_hour, category, description FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// ByCategory returns the most recent N events of one category, newest first.
func (db *DB) ByCategory(category string, limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT game_hour, category, description FROM events WHERE category = ? ORDER BY id DESC LIMIT ?",
		category, limit,
	)
	return events, err
}
