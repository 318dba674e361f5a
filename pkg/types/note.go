// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Note is a captured thought: a transcript plus the themes detected in it.
// Themes are computed once at capture time and stored immutably; editing a
// note does not re-classify it.
type Note struct {
	// ID is the database row identifier.
	ID int64 `json:"id" yaml:"id"`

	// Transcript is the free-form text of the note.
	Transcript string `json:"transcript" yaml:"transcript"`

	// Themes lists the detected theme labels, deduplicated, at most three.
	Themes []string `json:"themes" yaml:"themes"`

	// AudioPath references the source recording when the note came from
	// audio. Transcription happens upstream; this is a label only.
	AudioPath string `json:"audio_path,omitempty" yaml:"audio_path,omitempty"`

	// Processed marks the note as classified and ready for analysis.
	Processed bool `json:"processed" yaml:"processed"`

	// CreatedAt is when the note was captured.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
