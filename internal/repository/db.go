package repository

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLExecutor represents both sql.DB and sql.Tx
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Ensure sql.DB implements SQLExecutor
var _ SQLExecutor = (*sql.DB)(nil)

// Open opens the sqlite database file at path, creating it if absent.
// A single connection is enough: the store is process-local and every
// operation is one sequential round trip.
func Open(path string) (*sql.DB, error) {
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	return db, nil
}

// InitSchema creates the card table and the transfer journal if they do
// not exist. Running it against an existing store never alters existing
// records.
func InitSchema(db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS card (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			number TEXT,
			pin TEXT,
			balance INTEGER DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS transfers (
			id TEXT PRIMARY KEY,
			sender_number TEXT NOT NULL,
			receiver_number TEXT NOT NULL,
			amount INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
