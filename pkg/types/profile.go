// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Tone is the writing voice used when synthesizing content.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneInspirational  Tone = "inspirational"
	ToneAnalytical     Tone = "analytical"
	ToneStorytelling   Tone = "storytelling"
)

// Tones lists the accepted tone values in display order.
var Tones = []Tone{
	ToneProfessional,
	ToneConversational,
	ToneInspirational,
	ToneAnalytical,
	ToneStorytelling,
}

// Valid reports whether t is a member of the tone vocabulary.
func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// PostingFrequency is how often the user intends to publish.
type PostingFrequency string

const (
	FrequencyDaily         PostingFrequency = "daily"
	FrequencyEveryOtherDay PostingFrequency = "every_other_day"
	FrequencyWeekly        PostingFrequency = "weekly"
	FrequencyBiWeekly      PostingFrequency = "bi-weekly"
)

// Frequencies lists the accepted posting frequencies in display order.
var Frequencies = []PostingFrequency{
	FrequencyDaily,
	FrequencyEveryOtherDay,
	FrequencyWeekly,
	FrequencyBiWeekly,
}

// Valid reports whether f is a member of the frequency vocabulary.
func (f PostingFrequency) Valid() bool {
	for _, v := range Frequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Profile holds the user's identity, voice, and publishing bandwidth.
// The most recently created row is treated as the active profile.
type Profile struct {
	// ID is the database row identifier.
	ID int64 `json:"id" yaml:"id"`

	// Name is the user's display name.
	Name string `json:"name" yaml:"name"`

	// Role is the user's title (e.g. "VP Marketing").
	Role string `json:"role" yaml:"role"`

	// Company is the user's organization, optional.
	Company string `json:"company,omitempty" yaml:"company,omitempty"`

	// Tone is the default writing voice for generated content.
	Tone Tone `json:"tone" yaml:"tone"`

	// PostingFrequency drives the content-buffer cadence analysis.
	PostingFrequency PostingFrequency `json:"posting_frequency" yaml:"posting_frequency"`

	// Interests lists areas of expertise chosen at setup.
	Interests []string `json:"interests" yaml:"interests"`

	// CreatedAt is when the profile row was saved.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
