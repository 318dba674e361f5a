// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// SaveAnalysis appends a brand-analysis snapshot and returns its id.
// Snapshots are never updated or deleted.
func (s *Store) SaveAnalysis(a types.BrandAnalysis) (int64, error) {
	countsJSON, err := json.Marshal(a.ThemeCounts)
	if err != nil {
		return 0, fmt.Errorf("encoding theme counts: %w", err)
	}
	recsJSON, err := json.Marshal(a.Recommendations)
	if err != nil {
		return 0, fmt.Errorf("encoding recommendations: %w", err)
	}
	learnJSON, err := json.Marshal(a.LearningSuggestions)
	if err != nil {
		return 0, fmt.Errorf("encoding learning suggestions: %w", err)
	}
	promptsJSON, err := json.Marshal(a.ImplementationPrompts)
	if err != nil {
		return 0, fmt.Errorf("encoding implementation prompts: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO analyses (theme_counts, recommendations, learning_suggestions, implementation_prompts, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(countsJSON), string(recsJSON), string(learnJSON), string(promptsJSON), now(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting analysis: %w", err)
	}
	return res.LastInsertId()
}

// LatestAnalysis returns the most recent snapshot, or nil when no analysis
// has been run yet.
func (s *Store) LatestAnalysis() (*types.BrandAnalysis, error) {
	row := s.db.QueryRow(
		`SELECT id, theme_counts, recommendations, learning_suggestions, implementation_prompts, created_at
		 FROM analyses ORDER BY created_at DESC, id DESC LIMIT 1`)

	var a types.BrandAnalysis
	var countsJSON, recsJSON, learnJSON, promptsJSON, createdAt string
	err := row.Scan(&a.ID, &countsJSON, &recsJSON, &learnJSON, &promptsJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading analysis: %w", err)
	}

	for _, pair := range []struct {
		src string
		dst any
	}{
		{countsJSON, &a.ThemeCounts},
		{recsJSON, &a.Recommendations},
		{learnJSON, &a.LearningSuggestions},
		{promptsJSON, &a.ImplementationPrompts},
	} {
		if pair.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(pair.src), pair.dst); err != nil {
			return nil, fmt.Errorf("decoding analysis field: %w", err)
		}
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}
