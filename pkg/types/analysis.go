// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BrandAnalysis is a point-in-time snapshot of the theme balance report.
// Snapshots are append-only; they are never mutated after being saved.
type BrandAnalysis struct {
	// ID is the database row identifier.
	ID int64 `json:"id" yaml:"id"`

	// ThemeCounts maps each theme label to the number of processed notes
	// containing it. A multi-themed note counts once per theme.
	ThemeCounts map[string]int `json:"theme_counts" yaml:"theme_counts"`

	// Recommendations are the balance advisories against the ideal
	// distribution, or a single positive message when nothing triggers.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`

	// LearningSuggestions are curated resources for weak themes, at most five.
	LearningSuggestions []string `json:"learning_suggestions" yaml:"learning_suggestions"`

	// ImplementationPrompts are ready-to-record content prompts for weak
	// themes, at most three.
	ImplementationPrompts []string `json:"implementation_prompts" yaml:"implementation_prompts"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CadenceSuggestion is the content-buffer advisory derived from the user's
// posting frequency and the count of ready drafts.
type CadenceSuggestion struct {
	// WeeksOfContent is the buffer expressed in weeks of runway.
	WeeksOfContent float64 `json:"weeks_of_content" yaml:"weeks_of_content"`

	// Buffer is the human-readable buffer summary.
	Buffer string `json:"buffer" yaml:"buffer"`

	// Recommendation is the tier advisory string.
	Recommendation string `json:"recommendation" yaml:"recommendation"`

	// NextCreationDate labels when the next creation session should happen:
	// "Today", "This week", or "Next week".
	NextCreationDate string `json:"next_creation_date" yaml:"next_creation_date"`
}
