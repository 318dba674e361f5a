// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists profiles, notes, drafts, and brand analyses in a
// single SQLite database. Every write is a single-row operation; there are
// no cross-entity transactions. Persistence failures are returned to the
// caller unwrapped into fallbacks: a failed write means the operation
// failed.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "brand-studio.db"

// Store manages the brand-studio SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database under dataDir and ensures the schema
// exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			company TEXT,
			tone TEXT NOT NULL,
			posting_frequency TEXT NOT NULL,
			interests TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			transcript TEXT NOT NULL,
			themes TEXT,
			audio_path TEXT,
			processed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id INTEGER NOT NULL REFERENCES notes(id),
			format TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			scheduled_at TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_note_id ON drafts(note_id)`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_status ON drafts(status)`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			theme_counts TEXT,
			recommendations TEXT,
			learning_suggestions TEXT,
			implementation_prompts TEXT,
			created_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// now returns the current UTC time formatted for storage. Timestamps are
// stored as RFC 3339 strings so lexical ordering matches chronological
// ordering.
func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseTime converts a stored timestamp back into a time.Time. A zero time
// is returned for unparseable values rather than failing the read.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
