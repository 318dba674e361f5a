// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehartwell/brand-studio/internal/balance"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the content pipeline and posting cadence",
	Long: `Calendar reports how much ready content is on hand relative to the
profile's posting frequency, lists scheduled drafts in publication order,
and suggests planning ideas for underrepresented themes.`,
	RunE: runCalendar,
}

func runCalendar(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	profile, err := requireProfile(s)
	if err != nil {
		return err
	}

	ready, err := s.CountReady()
	if err != nil {
		return err
	}

	suggestion := balance.SuggestCadence(profile.PostingFrequency, ready)

	fmt.Printf("Posting frequency: %s\n", profile.PostingFrequency)
	fmt.Printf("Ready drafts:      %d\n", ready)
	fmt.Println(suggestion.Buffer)
	fmt.Println(suggestion.Recommendation)
	fmt.Printf("Next creation: %s\n", suggestion.NextCreationDate)
	fmt.Println()

	scheduled, err := s.ScheduledDrafts()
	if err != nil {
		return err
	}

	if len(scheduled) == 0 {
		fmt.Println("Nothing scheduled.")
	} else {
		fmt.Println("Scheduled:")
		weekStart, weekEnd := currentWeek(time.Now())
		for _, d := range scheduled {
			marker := " "
			if d.ScheduledAt != nil && !d.ScheduledAt.Before(weekStart) && d.ScheduledAt.Before(weekEnd) {
				marker = "*"
			}
			when := "-"
			if d.ScheduledAt != nil {
				when = d.ScheduledAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("  %s %-16s  draft %d (%s)\n", marker, when, d.ID, d.Format)
		}
		fmt.Println("  (* = this week)")
	}
	fmt.Println()

	themeLists, err := s.ProcessedThemes()
	if err != nil {
		return err
	}
	ideas := balance.PlanningIdeas(balance.CountThemes(themeLists))
	if len(ideas) > 0 {
		fmt.Println("Planning ideas:")
		for _, idea := range ideas {
			fmt.Printf("  - %s\n", idea)
		}
	}
	return nil
}

// currentWeek returns the Monday-anchored calendar week containing t.
func currentWeek(t time.Time) (start, end time.Time) {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -sinceMonday)
	return start, start.AddDate(0, 0, 7)
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
