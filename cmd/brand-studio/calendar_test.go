// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"
	"time"
)

func TestCurrentWeekAnchorsToMonday(t *testing.T) {
	// 2026-09-07 is a Monday.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday},
		{"midweek", time.Date(2026, 9, 9, 15, 30, 0, 0, time.UTC)},
		{"sunday end of week", time.Date(2026, 9, 13, 23, 59, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := currentWeek(tt.in)
			if !start.Equal(monday) {
				t.Errorf("start = %v, want %v", start, monday)
			}
			if !end.Equal(monday.AddDate(0, 0, 7)) {
				t.Errorf("end = %v, want %v", end, monday.AddDate(0, 0, 7))
			}
		})
	}
}

func TestCurrentWeekSundayBelongsToPrecedingMonday(t *testing.T) {
	// The Sunday before 2026-09-07 falls in the week starting 2026-08-31.
	sunday := time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC)
	start, _ := currentWeek(sunday)
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}
