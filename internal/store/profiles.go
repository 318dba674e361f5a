// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// SaveProfile appends a new profile row and returns its id. The latest row
// becomes the active profile; older rows are kept as history.
func (s *Store) SaveProfile(p types.Profile) (int64, error) {
	if !p.Tone.Valid() {
		return 0, fmt.Errorf("invalid tone %q", p.Tone)
	}
	if !p.PostingFrequency.Valid() {
		return 0, fmt.Errorf("invalid posting frequency %q", p.PostingFrequency)
	}

	interestsJSON, err := json.Marshal(p.Interests)
	if err != nil {
		return 0, fmt.Errorf("encoding interests: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO profiles (name, role, company, tone, posting_frequency, interests, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Role, p.Company, string(p.Tone), string(p.PostingFrequency),
		string(interestsJSON), now(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting profile: %w", err)
	}
	return res.LastInsertId()
}

// LatestProfile returns the most recently created profile, or nil when no
// profile has been set up yet.
func (s *Store) LatestProfile() (*types.Profile, error) {
	row := s.db.QueryRow(
		`SELECT id, name, role, company, tone, posting_frequency, interests, created_at
		 FROM profiles ORDER BY created_at DESC, id DESC LIMIT 1`)

	var p types.Profile
	var interestsJSON, createdAt string
	err := row.Scan(&p.ID, &p.Name, &p.Role, &p.Company, &p.Tone, &p.PostingFrequency,
		&interestsJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	if interestsJSON != "" {
		if err := json.Unmarshal([]byte(interestsJSON), &p.Interests); err != nil {
			return nil, fmt.Errorf("decoding interests: %w", err)
		}
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}
