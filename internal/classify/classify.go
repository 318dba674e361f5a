// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps free text to topical theme labels. The primary
// path asks the remote text service; any failure there falls back silently
// to deterministic keyword matching. Classification has no side effects.
package classify

import (
	"context"
	"strings"

	"github.com/ehartwell/brand-studio/internal/ai"
)

// maxThemes caps the number of labels returned per note.
const maxThemes = 3

// classifyMaxTokens is the token budget for the classification call.
const classifyMaxTokens = 100

// Vocabulary lists every theme label the classifier may return.
var Vocabulary = []string{
	"leadership",
	"product",
	"industry insights",
	"personal story",
	"strategy",
	"innovation",
	"team building",
	"customer success",
	"market trends",
	"company culture",
}

// themeKeywords drives the fallback path. Order matters: detected themes
// are collected in this enumeration order, not frequency order.
var themeKeywords = []struct {
	theme    string
	keywords []string
}{
	{"leadership", []string{"lead", "leader", "manage", "decision", "vision", "strategy", "team"}},
	{"product", []string{"product", "feature", "development", "launch", "innovation", "design"}},
	{"industry insights", []string{"market", "industry", "trend", "analysis", "forecast", "research"}},
	{"personal story", []string{"personal", "experience", "journey", "learned", "story", "challenge"}},
	{"strategy", []string{"strategy", "plan", "goal", "objective", "roadmap", "direction"}},
	{"customer success", []string{"customer", "client", "success", "satisfaction", "feedback", "support"}},
	{"team building", []string{"team", "collaboration", "culture", "hiring", "talent", "growth"}},
	{"innovation", []string{"innovation", "creative", "new", "breakthrough", "technology", "future"}},
}

const classifyPrompt = `You are an expert at analyzing business content themes. Identify the main themes from the following categories: leadership, product, industry insights, personal story, strategy, innovation, team building, customer success, market trends, company culture. Return only a comma-separated list of relevant themes.

Content:
`

// Classifier detects themes in note transcripts.
type Classifier struct {
	gen ai.Generator
}

// New returns a Classifier. A nil Generator means every call uses the
// keyword fallback.
func New(gen ai.Generator) *Classifier {
	return &Classifier{gen: gen}
}

// Classify returns at most three theme labels for text. Remote-service
// failures are never surfaced; the keyword fallback answers instead.
func (c *Classifier) Classify(ctx context.Context, text string) []string {
	if c.gen != nil {
		resp, err := c.gen.Generate(ctx, classifyPrompt+text, classifyMaxTokens)
		if err == nil {
			if themes := parseThemes(resp); len(themes) > 0 {
				return themes
			}
		}
	}
	return KeywordThemes(text)
}

// parseThemes splits a comma-separated service response into known theme
// labels: trimmed, lowercased, deduplicated, capped at three. Labels
// outside the vocabulary are dropped.
func parseThemes(resp string) []string {
	known := make(map[string]bool, len(Vocabulary))
	for _, v := range Vocabulary {
		known[v] = true
	}

	var themes []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(resp, ",") {
		label := strings.ToLower(strings.TrimSpace(part))
		if label == "" || !known[label] || seen[label] {
			continue
		}
		seen[label] = true
		themes = append(themes, label)
		if len(themes) == maxThemes {
			break
		}
	}
	return themes
}

// KeywordThemes is the deterministic fallback: a theme is detected when any
// of its keywords appears, case-insensitively, anywhere in text. Themes are
// collected in the fixed enumeration order and capped at three.
func KeywordThemes(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, entry := range themeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				detected = append(detected, entry.theme)
				break
			}
		}
		if len(detected) == maxThemes {
			break
		}
	}
	return detected
}
