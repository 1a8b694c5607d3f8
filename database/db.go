package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the SQLite file at dbPath. The schema is not touched until
// EnsureSchema is called.
func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %w", ErrStorageUnavailable, err)
	}

	// LIKE must be case-sensitive on every connection, so it goes in the DSN
	dsn := dbPath + "?_cslike=true&_busy_timeout=5000"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrStorageUnavailable, err)
	}

	// Single active connection: statements run one after another
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to connect: %w", ErrStorageUnavailable, err)
	}

	return &DB{db}, nil
}

// EnsureSchema creates the notes table and its index when missing.
// Calling it again on a ready database changes nothing.
func (db *DB) EnsureSchema() error {
	queries := []string{
		// Enable WAL mode so reads are not blocked by writes
		`PRAGMA journal_mode=WAL`,

		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%f', 'now', 'localtime'))
		)`,

		`CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at DESC, id DESC)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("%w: schema setup failed: %w", ErrStorageUnavailable, err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
