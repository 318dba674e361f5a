// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package balance

import (
	"reflect"
	"strings"
	"testing"
)

func TestCountThemes(t *testing.T) {
	lists := [][]string{
		{"leadership", "strategy"},
		{"leadership"},
		{},
		{"innovation"},
	}
	got := CountThemes(lists)
	want := map[string]int{"leadership": 2, "strategy": 1, "innovation": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountThemes = %v, want %v", got, want)
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		counts      map[string]int
		wantThemes  []string // themes that must appear in a recommendation
		omitThemes  []string // themes that must not appear
		wantBalance bool     // expect the single positive message
	}{
		{
			name:       "single leadership note is not under-represented",
			counts:     map[string]int{"leadership": 1},
			omitThemes: []string{"leadership"},
			wantThemes: []string{"industry insights", "personal story", "strategy", "innovation", "team building", "customer success"},
		},
		{
			name: "no data flags every ideal theme",
			counts: map[string]int{},
			wantThemes: []string{
				"leadership", "industry insights", "personal story",
				"strategy", "innovation", "team building", "customer success",
			},
		},
		{
			name: "balanced distribution yields positive message",
			counts: map[string]int{
				"leadership":        25,
				"industry insights": 20,
				"personal story":    15,
				"strategy":          15,
				"innovation":        10,
				"team building":     10,
				"customer success":  5,
			},
			wantBalance: true,
		},
		{
			name: "just under threshold triggers",
			// leadership at 17/100 = 17% < 25*0.7 = 17.5%
			counts: map[string]int{"leadership": 17, "industry insights": 83},
			wantThemes: []string{"leadership"},
			omitThemes: []string{"industry insights"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommendations(tt.counts)
			joined := strings.Join(recs, "\n")

			if tt.wantBalance {
				if len(recs) != 1 || !strings.Contains(joined, "Great job") {
					t.Errorf("want single positive message, got %v", recs)
				}
				return
			}
			for _, theme := range tt.wantThemes {
				if !strings.Contains(joined, "more "+theme+" content") {
					t.Errorf("expected recommendation for %q, got %v", theme, recs)
				}
			}
			for _, theme := range tt.omitThemes {
				if strings.Contains(joined, "more "+theme+" content") {
					t.Errorf("unexpected recommendation for %q in %v", theme, recs)
				}
			}
		})
	}
}

func TestRecommendationsOrderIsDeterministic(t *testing.T) {
	counts := map[string]int{}
	first := Recommendations(counts)
	for i := 0; i < 10; i++ {
		if got := Recommendations(counts); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
	// With no data every ideal theme triggers, in fixed table order.
	if len(first) != 7 {
		t.Fatalf("len = %d, want 7", len(first))
	}
	if !strings.Contains(first[0], "leadership") || !strings.Contains(first[6], "customer success") {
		t.Errorf("unexpected ordering: %v", first)
	}
}

func TestWeakThemes(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   []string
	}{
		{
			name:   "all weak with no data",
			counts: map[string]int{},
			want:   []string{"leadership", "industry insights", "personal story", "strategy", "innovation"},
		},
		{
			name: "dominant theme is not weak",
			// leadership 5/10 = 50%, strategy 1/10 = 10% (not <10), rest 0%
			counts: map[string]int{"leadership": 5, "strategy": 1, "product": 4},
			want:   []string{"industry insights", "personal story", "innovation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeakThemes(tt.counts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WeakThemes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeakThemesBoundary(t *testing.T) {
	// strategy exactly 10% is not weak.
	counts := map[string]int{"strategy": 1, "product": 9}
	got := WeakThemes(counts)
	for _, theme := range got {
		if theme == "strategy" {
			t.Errorf("strategy at exactly 10%% should not be weak: %v", got)
		}
	}
}

func TestLearningSuggestionsCappedAtFive(t *testing.T) {
	weak := []string{"leadership", "industry insights", "personal story"}
	got := LearningSuggestions(weak)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	// First three come from leadership, next two from industry insights.
	if !strings.Contains(got[0], "The First 90 Days") {
		t.Errorf("unexpected first suggestion: %q", got[0])
	}
	if !strings.Contains(got[3], "McKinsey") {
		t.Errorf("unexpected fourth suggestion: %q", got[3])
	}
}

func TestLearningSuggestionsGeneralForNoWeakThemes(t *testing.T) {
	got := LearningSuggestions(nil)
	if !reflect.DeepEqual(got, GeneralResources) {
		t.Errorf("want the general resources, got %v", got)
	}
}

func TestImplementationPromptsCappedAtThree(t *testing.T) {
	weak := []string{"leadership", "strategy"}
	got := ImplementationPrompts(weak)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, p := range got {
		if !strings.Contains(strings.Join(implementationPrompts["leadership"], "\n"), p) {
			t.Errorf("prompt %q should come from the leadership table", p)
		}
	}
}

func TestImplementationPromptsSkipThemesWithoutEntries(t *testing.T) {
	// Innovation has no prompt entries; only personal story contributes.
	got := ImplementationPrompts([]string{"innovation", "personal story"})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !strings.Contains(got[0], "career failure") {
		t.Errorf("unexpected first prompt: %q", got[0])
	}
}

func TestImplementationPromptsAdvancedForNoWeakThemes(t *testing.T) {
	got := ImplementationPrompts(nil)
	if !reflect.DeepEqual(got, AdvancedPrompts) {
		t.Errorf("want the advanced prompts, got %v", got)
	}
}

func TestAnalyzeBalancedCorpus(t *testing.T) {
	// A corpus matching the ideal distribution exactly: no theme is weak,
	// so the report carries the general resources and advanced prompts.
	var lists [][]string
	for theme, ideal := range map[string]int{
		"leadership":        25,
		"industry insights": 20,
		"personal story":    15,
		"strategy":          15,
		"innovation":        10,
		"team building":     10,
		"customer success":  5,
	} {
		for i := 0; i < ideal; i++ {
			lists = append(lists, []string{theme})
		}
	}

	a := Analyze(lists)

	if len(a.Recommendations) != 1 || !strings.Contains(a.Recommendations[0], "Great job") {
		t.Errorf("recommendations = %v, want the single positive message", a.Recommendations)
	}
	if !reflect.DeepEqual(a.LearningSuggestions, GeneralResources) {
		t.Errorf("learning suggestions = %v, want the general resources", a.LearningSuggestions)
	}
	if !reflect.DeepEqual(a.ImplementationPrompts, AdvancedPrompts) {
		t.Errorf("implementation prompts = %v, want the advanced prompts", a.ImplementationPrompts)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	lists := [][]string{{"leadership"}, {"strategy", "innovation"}}
	first := Analyze(lists)
	second := Analyze(lists)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze is not idempotent:\n%+v\n%+v", first, second)
	}
}
