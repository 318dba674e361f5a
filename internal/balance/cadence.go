// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package balance

import (
	"fmt"
	"time"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// postsPerWeek maps each posting frequency to its weekly publication rate.
var postsPerWeek = map[types.PostingFrequency]float64{
	types.FrequencyDaily:         7,
	types.FrequencyEveryOtherDay: 3.5,
	types.FrequencyWeekly:        1,
	types.FrequencyBiWeekly:      0.5,
}

// SuggestCadence converts the count of ready drafts (approved plus
// scheduled) into weeks of runway against the user's posting frequency and
// classifies the buffer into one of three advisory tiers. An unrecognized
// frequency falls back to the weekly rate.
func SuggestCadence(freq types.PostingFrequency, readyCount int) types.CadenceSuggestion {
	rate, ok := postsPerWeek[freq]
	if !ok {
		rate = postsPerWeek[types.FrequencyWeekly]
	}

	weeks := float64(readyCount) / rate

	s := types.CadenceSuggestion{
		WeeksOfContent: weeks,
		Buffer:         fmt.Sprintf("You have %.1f weeks of content ready", weeks),
	}

	switch {
	case weeks < 1:
		s.Recommendation = "🔴 Create more content immediately - you're running low!"
		s.NextCreationDate = "Today"
	case weeks < 2:
		s.Recommendation = "🟡 Consider creating content this week to maintain buffer"
		s.NextCreationDate = "This week"
	default:
		s.Recommendation = "🟢 Good content buffer! You can focus on other priorities"
		s.NextCreationDate = "Next week"
	}
	return s
}

// planningChecklist names the themes probed for calendar planning ideas.
var planningChecklist = []string{
	"leadership",
	"industry insights",
	"personal story",
	"strategy",
}

// planningPercent is the observed share below which a theme is considered
// underrepresented for planning purposes.
const planningPercent = 15.0

// PlanningIdeas suggests up to three underrepresented themes to plan
// content around. With no counts at all there is nothing to plan from and
// the result is empty; with balanced counts it carries a single
// well-balanced message.
func PlanningIdeas(counts map[string]int) []string {
	if len(counts) == 0 {
		return nil
	}

	var ideas []string
	for _, theme := range planningChecklist {
		if observedPercent(counts, theme) < planningPercent {
			ideas = append(ideas, fmt.Sprintf("More %s content (currently underrepresented)", theme))
		}
		if len(ideas) == 3 {
			break
		}
	}
	if len(ideas) == 0 {
		ideas = append(ideas, "Your content themes are well balanced! Keep up the variety.")
	}
	return ideas
}

// weeklyChallenges rotate by calendar week.
var weeklyChallenges = []string{
	"Share one personal failure and the lesson you learned",
	"Post about an industry trend you disagree with and why",
	"Tell the story behind a major decision you made recently",
	"Share a framework or process that's working well for your team",
	"Write about a book or article that changed your perspective",
}

// WeeklyChallenge returns the brand challenge for the ISO week containing t.
func WeeklyChallenge(t time.Time) string {
	_, week := t.ISOWeek()
	return weeklyChallenges[week%len(weeklyChallenges)]
}
