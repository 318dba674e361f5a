// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// SaveNote persists a captured note and returns its id. Themes are stored
// as a JSON array; the note is immutable once saved.
func (s *Store) SaveNote(n types.Note) (int64, error) {
	themesJSON, err := json.Marshal(dedupe(n.Themes))
	if err != nil {
		return 0, fmt.Errorf("encoding themes: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO notes (transcript, themes, audio_path, processed, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		n.Transcript, string(themesJSON), n.AudioPath, n.Processed, now(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting note: %w", err)
	}
	return res.LastInsertId()
}

// Note returns the note with the given id.
func (s *Store) Note(id int64) (*types.Note, error) {
	row := s.db.QueryRow(
		`SELECT id, transcript, themes, audio_path, processed, created_at
		 FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("note %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading note %d: %w", id, err)
	}
	return n, nil
}

// RecentNotes returns up to limit notes, most recent first.
func (s *Store) RecentNotes(limit int) ([]types.Note, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, transcript, themes, audio_path, processed, created_at
		 FROM notes ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []types.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// ProcessedThemes returns the theme lists of all processed notes, for the
// balance analyzer.
func (s *Store) ProcessedThemes() ([][]string, error) {
	rows, err := s.db.Query(`SELECT themes FROM notes WHERE processed = 1`)
	if err != nil {
		return nil, fmt.Errorf("reading processed notes: %w", err)
	}
	defer rows.Close()

	var lists [][]string
	for rows.Next() {
		var themesJSON string
		if err := rows.Scan(&themesJSON); err != nil {
			return nil, fmt.Errorf("scanning themes: %w", err)
		}
		var themes []string
		if themesJSON != "" {
			if err := json.Unmarshal([]byte(themesJSON), &themes); err != nil {
				return nil, fmt.Errorf("decoding themes: %w", err)
			}
		}
		lists = append(lists, themes)
	}
	return lists, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (*types.Note, error) {
	var n types.Note
	var themesJSON, createdAt string
	if err := sc.Scan(&n.ID, &n.Transcript, &themesJSON, &n.AudioPath, &n.Processed, &createdAt); err != nil {
		return nil, err
	}
	if themesJSON != "" {
		if err := json.Unmarshal([]byte(themesJSON), &n.Themes); err != nil {
			return nil, fmt.Errorf("decoding themes: %w", err)
		}
	}
	n.CreatedAt = parseTime(createdAt)
	return &n, nil
}

// dedupe drops duplicate themes, preserving first-seen order.
func dedupe(themes []string) []string {
	seen := make(map[string]bool, len(themes))
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
