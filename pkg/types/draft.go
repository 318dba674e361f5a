// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Format identifies the target platform for a generated draft.
type Format string

const (
	FormatLinkedIn    Format = "linkedin"
	FormatVideoScript Format = "video_script"
	FormatNewsletter  Format = "newsletter"
)

// Formats lists the known content formats in display order.
var Formats = []Format{FormatLinkedIn, FormatVideoScript, FormatNewsletter}

// Valid reports whether f is a known content format.
func (f Format) Valid() bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// DraftStatus tracks a draft through the approval workflow. The store
// validates membership but does not enforce transition order: any status
// may overwrite any other.
type DraftStatus string

const (
	StatusDraft     DraftStatus = "draft"
	StatusApproved  DraftStatus = "approved"
	StatusScheduled DraftStatus = "scheduled"
	StatusPublished DraftStatus = "published"
)

// Statuses lists the workflow statuses in lifecycle order.
var Statuses = []DraftStatus{StatusDraft, StatusApproved, StatusScheduled, StatusPublished}

// Valid reports whether s is a known draft status.
func (s DraftStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Draft is a generated piece of content derived from one note. A note may
// have many drafts, one per generation run.
type Draft struct {
	// ID is the database row identifier.
	ID int64 `json:"id" yaml:"id"`

	// NoteID references the note this draft was generated from.
	NoteID int64 `json:"note_id" yaml:"note_id"`

	// Format is the target platform.
	Format Format `json:"format" yaml:"format"`

	// Content is the draft text, editable after generation.
	Content string `json:"content" yaml:"content"`

	// Status is the workflow state.
	Status DraftStatus `json:"status" yaml:"status"`

	// ScheduledAt is the planned publication time. Set when the draft is
	// scheduled; nil otherwise.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty" yaml:"scheduled_at,omitempty"`

	// CreatedAt is when the draft was generated.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
