// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package balance computes the theme-balance report: observed theme
// frequencies against an ideal distribution, with recommendations,
// learning resources, implementation prompts, and a posting-cadence
// suggestion. Every function is pure; calling twice with the same inputs
// yields byte-identical output.
package balance

import (
	"fmt"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// idealDistribution is the target percentage breakdown of themes for an
// executive brand. Percentages sum to 100. Order is fixed so report output
// is deterministic.
var idealDistribution = []struct {
	theme   string
	percent float64
}{
	{"leadership", 25},
	{"industry insights", 20},
	{"personal story", 15},
	{"strategy", 15},
	{"innovation", 10},
	{"team building", 10},
	{"customer success", 5},
}

// recommendThreshold triggers a recommendation when the observed share is
// below this fraction of the ideal.
const recommendThreshold = 0.7

// weakThemeChecklist names the themes probed for learning suggestions and
// implementation prompts.
var weakThemeChecklist = []string{
	"leadership",
	"industry insights",
	"personal story",
	"strategy",
	"innovation",
}

// weakThemePercent is the observed share below which a checklist theme
// counts as weak.
const weakThemePercent = 10.0

// CountThemes tallies how many notes carry each theme. A note with several
// themes contributes to several counts.
func CountThemes(themeLists [][]string) map[string]int {
	counts := make(map[string]int)
	for _, themes := range themeLists {
		for _, theme := range themes {
			counts[theme]++
		}
	}
	return counts
}

// total sums all theme counts, floored at 1 to avoid division by zero.
func total(counts map[string]int) float64 {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum == 0 {
		return 1
	}
	return float64(sum)
}

// observedPercent returns theme's share of the total count, as a percentage.
func observedPercent(counts map[string]int, theme string) float64 {
	return float64(counts[theme]) / total(counts) * 100
}

// Recommendations compares observed theme shares against the ideal
// distribution and advises on each theme running significantly below
// target. When nothing triggers it returns a single positive message.
func Recommendations(counts map[string]int) []string {
	var recs []string
	for _, ideal := range idealDistribution {
		current := observedPercent(counts, ideal.theme)
		if current < ideal.percent*recommendThreshold {
			recs = append(recs, fmt.Sprintf(
				"Consider sharing more %s content. You're currently at %.1f%% vs ideal %.0f%%",
				ideal.theme, current, ideal.percent))
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "Great job maintaining balanced content! Keep up the diverse mix of themes.")
	}
	return recs
}

// WeakThemes returns the checklist themes whose observed share is under
// ten percent, in checklist order.
func WeakThemes(counts map[string]int) []string {
	var weak []string
	for _, theme := range weakThemeChecklist {
		if observedPercent(counts, theme) < weakThemePercent {
			weak = append(weak, theme)
		}
	}
	return weak
}

// learningResources maps each checklist theme to curated resources.
var learningResources = map[string][]string{
	"leadership": {
		"Read 'The First 90 Days' by Michael Watkins",
		"Watch Simon Sinek's TED Talk on 'Start With Why'",
		"Follow leadership insights from Brené Brown",
	},
	"industry insights": {
		"Subscribe to McKinsey Global Institute reports",
		"Follow Harvard Business Review weekly summaries",
		"Set up Google Alerts for your industry keywords",
	},
	"personal story": {
		"Read 'The Storytelling Edge' by Shane Snow",
		"Practice the Hero's Journey framework for business stories",
		"Document your weekly 'lessons learned' moments",
	},
	"strategy": {
		"Read 'Good Strategy Bad Strategy' by Richard Rumelt",
		"Study case studies from your industry leaders",
		"Follow strategy frameworks from BCG insights",
	},
	"innovation": {
		"Follow innovation labs from top tech companies",
		"Read 'The Innovator's Dilemma' by Clayton Christensen",
		"Join innovation-focused LinkedIn groups",
	},
}

// GeneralResources are suggested when no theme is weak.
var GeneralResources = []string{
	"Read 'The Trusted Advisor' by David Maister",
	"Follow thought leaders in your industry on LinkedIn",
	"Subscribe to Harvard Business Review for diverse insights",
}

// LearningSuggestions collects resources for the weak themes, in the order
// the themes were discovered, capped at five. With no weak themes the
// general resources are suggested instead.
func LearningSuggestions(weakThemes []string) []string {
	if len(weakThemes) == 0 {
		return append([]string(nil), GeneralResources...)
	}
	var suggestions []string
	for _, theme := range weakThemes {
		suggestions = append(suggestions, learningResources[theme]...)
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

// implementationPrompts maps themes to ready-to-record content prompts.
// Innovation has no entry; weak innovation contributes nothing here.
var implementationPrompts = map[string][]string{
	"leadership": {
		"Record a story about a recent difficult decision you made and what you learned",
		"Share your framework for giving constructive feedback to team members",
		"Describe a time when you had to pivot strategy and how you communicated it",
	},
	"personal story": {
		"Tell the story of your biggest career failure and what it taught you",
		"Share what motivated you to join your current company or role",
		"Describe a mentor who shaped your leadership style",
	},
	"industry insights": {
		"Analyze a recent industry report and share your key takeaways",
		"Predict one major trend that will impact your industry in the next 2 years",
		"Compare your industry today vs. 5 years ago - what's changed?",
	},
	"strategy": {
		"Explain your approach to quarterly planning and goal setting",
		"Share how you evaluate and prioritize competing initiatives",
		"Describe your framework for making data-driven decisions",
	},
}

// AdvancedPrompts are offered when no theme is weak.
var AdvancedPrompts = []string{
	"Share a contrarian view about a popular trend in your industry",
	"Describe how you've evolved as a leader over the past year",
	"Explain a framework you use that others might find valuable",
}

// ImplementationPrompts collects prompts for the weak themes, in discovery
// order, capped at three. With no weak themes the advanced prompts are
// offered instead; weak themes without a table entry contribute nothing.
func ImplementationPrompts(weakThemes []string) []string {
	if len(weakThemes) == 0 {
		return append([]string(nil), AdvancedPrompts...)
	}
	var prompts []string
	for _, theme := range weakThemes {
		prompts = append(prompts, implementationPrompts[theme]...)
	}
	if len(prompts) > 3 {
		prompts = prompts[:3]
	}
	return prompts
}

// Analyze bundles the full report for a set of processed notes' themes.
func Analyze(themeLists [][]string) types.BrandAnalysis {
	counts := CountThemes(themeLists)
	weak := WeakThemes(counts)
	return types.BrandAnalysis{
		ThemeCounts:           counts,
		Recommendations:       Recommendations(counts),
		LearningSuggestions:   LearningSuggestions(weak),
		ImplementationPrompts: ImplementationPrompts(weak),
	}
}
