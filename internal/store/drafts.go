// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// SaveDraft persists a generated draft and returns its id. The status
// defaults to draft when unset.
func (s *Store) SaveDraft(d types.Draft) (int64, error) {
	if d.Status == "" {
		d.Status = types.StatusDraft
	}
	if !d.Status.Valid() {
		return 0, fmt.Errorf("invalid draft status %q", d.Status)
	}
	if !d.Format.Valid() {
		return 0, fmt.Errorf("invalid draft format %q", d.Format)
	}

	res, err := s.db.Exec(
		`INSERT INTO drafts (note_id, format, content, status, scheduled_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.NoteID, string(d.Format), d.Content, string(d.Status),
		formatScheduled(d.ScheduledAt), now(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting draft: %w", err)
	}
	return res.LastInsertId()
}

// Draft returns the draft with the given id.
func (s *Store) Draft(id int64) (*types.Draft, error) {
	row := s.db.QueryRow(
		`SELECT id, note_id, format, content, status, scheduled_at, created_at
		 FROM drafts WHERE id = ?`, id)

	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draft %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading draft %d: %w", id, err)
	}
	return d, nil
}

// Drafts returns drafts filtered by status, most recent first. An empty
// status returns all drafts.
func (s *Store) Drafts(status types.DraftStatus) ([]types.Draft, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = s.db.Query(
			`SELECT id, note_id, format, content, status, scheduled_at, created_at
			 FROM drafts ORDER BY created_at DESC, id DESC`)
	} else {
		if !status.Valid() {
			return nil, fmt.Errorf("invalid draft status %q", status)
		}
		rows, err = s.db.Query(
			`SELECT id, note_id, format, content, status, scheduled_at, created_at
			 FROM drafts WHERE status = ? ORDER BY created_at DESC, id DESC`, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	return collectDrafts(rows)
}

// DraftsForNote returns all drafts generated from one note.
func (s *Store) DraftsForNote(noteID int64) ([]types.Draft, error) {
	rows, err := s.db.Query(
		`SELECT id, note_id, format, content, status, scheduled_at, created_at
		 FROM drafts WHERE note_id = ? ORDER BY created_at DESC, id DESC`, noteID)
	if err != nil {
		return nil, fmt.Errorf("listing drafts for note %d: %w", noteID, err)
	}
	defer rows.Close()

	return collectDrafts(rows)
}

// ScheduledDrafts returns scheduled drafts ordered by scheduled time.
func (s *Store) ScheduledDrafts() ([]types.Draft, error) {
	rows, err := s.db.Query(
		`SELECT id, note_id, format, content, status, scheduled_at, created_at
		 FROM drafts WHERE status = ? ORDER BY scheduled_at ASC, id ASC`,
		string(types.StatusScheduled))
	if err != nil {
		return nil, fmt.Errorf("listing scheduled drafts: %w", err)
	}
	defer rows.Close()

	return collectDrafts(rows)
}

// UpdateDraftContent overwrites a draft's text after manual editing.
func (s *Store) UpdateDraftContent(id int64, content string) error {
	res, err := s.db.Exec(`UPDATE drafts SET content = ? WHERE id = ?`, content, id)
	if err != nil {
		return fmt.Errorf("updating draft %d: %w", id, err)
	}
	return requireRow(res, id)
}

// UpdateDraftStatus overwrites a draft's status and scheduled time. The
// write is a pure overwrite with no transition guard: any status may
// replace any other, and a nil scheduledAt clears the stored time.
func (s *Store) UpdateDraftStatus(id int64, status types.DraftStatus, scheduledAt *time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("invalid draft status %q", status)
	}
	if status == types.StatusScheduled && scheduledAt == nil {
		return fmt.Errorf("scheduling draft %d requires a scheduled time", id)
	}

	res, err := s.db.Exec(
		`UPDATE drafts SET status = ?, scheduled_at = ? WHERE id = ?`,
		string(status), formatScheduled(scheduledAt), id)
	if err != nil {
		return fmt.Errorf("updating draft %d status: %w", id, err)
	}
	return requireRow(res, id)
}

// DeleteDraft removes a draft.
func (s *Store) DeleteDraft(id int64) error {
	res, err := s.db.Exec(`DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft %d: %w", id, err)
	}
	return requireRow(res, id)
}

// CountReady counts approved plus scheduled drafts: the content buffer.
func (s *Store) CountReady() (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM drafts WHERE status IN (?, ?)`,
		string(types.StatusApproved), string(types.StatusScheduled)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting ready drafts: %w", err)
	}
	return count, nil
}

func collectDrafts(rows *sql.Rows) ([]types.Draft, error) {
	var drafts []types.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning draft: %w", err)
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

func scanDraft(sc scanner) (*types.Draft, error) {
	var d types.Draft
	var scheduledAt sql.NullString
	var createdAt string
	if err := sc.Scan(&d.ID, &d.NoteID, &d.Format, &d.Content, &d.Status, &scheduledAt, &createdAt); err != nil {
		return nil, err
	}
	if scheduledAt.Valid && scheduledAt.String != "" {
		t := parseTime(scheduledAt.String)
		d.ScheduledAt = &t
	}
	d.CreatedAt = parseTime(createdAt)
	return &d, nil
}

// formatScheduled renders an optional scheduled time for storage.
func formatScheduled(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// requireRow converts a zero-row update into a not-found error.
func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("draft %d not found", id)
	}
	return nil
}
