// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ehartwell/brand-studio/internal/balance"
	"github.com/ehartwell/brand-studio/pkg/types"
)

var gymCmd = &cobra.Command{
	Use:   "gym",
	Short: "Analyze theme balance across captured notes",
	Long: `Gym runs the brand balance analyzer over every processed note: theme
distribution against the ideal mix, recommendations for underrepresented
themes, a learning feed, implementation prompts, and this week's challenge.
Each run is persisted as an append-only snapshot.

Use --export to additionally write the snapshot to a YAML file.`,
	RunE: runGym,
}

func runGym(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	exportPath, _ := cmd.Flags().GetString("export")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	themeLists, err := s.ProcessedThemes()
	if err != nil {
		return err
	}

	analysis := balance.Analyze(themeLists)
	analysis.CreatedAt = time.Now().UTC()

	id, err := s.SaveAnalysis(analysis)
	if err != nil {
		return err
	}
	analysis.ID = id

	if exportPath != "" {
		data, err := yaml.Marshal(analysis)
		if err != nil {
			return fmt.Errorf("marshaling analysis: %w", err)
		}
		if err := os.WriteFile(exportPath, data, 0o644); err != nil {
			return fmt.Errorf("writing analysis export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", exportPath)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(analysis)
	return nil
}

func printAnalysis(a types.BrandAnalysis) {
	total := 0
	for _, n := range a.ThemeCounts {
		total += n
	}

	fmt.Printf("Brand gym report (%d theme mentions)\n", total)
	fmt.Println(strings.Repeat("=", 40))

	if total == 0 {
		fmt.Println("No themed notes yet. Capture a few thoughts first.")
	} else {
		themes := make([]string, 0, len(a.ThemeCounts))
		for theme := range a.ThemeCounts {
			themes = append(themes, theme)
		}
		sort.Slice(themes, func(i, j int) bool {
			if a.ThemeCounts[themes[i]] != a.ThemeCounts[themes[j]] {
				return a.ThemeCounts[themes[i]] > a.ThemeCounts[themes[j]]
			}
			return themes[i] < themes[j]
		})
		for _, theme := range themes {
			count := a.ThemeCounts[theme]
			fmt.Printf("  %-18s %3d  (%.1f%%)\n", theme, count, float64(count)/float64(total)*100)
		}
	}
	fmt.Println()

	fmt.Println("Recommendations:")
	for _, rec := range a.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	fmt.Println()

	if len(a.LearningSuggestions) > 0 {
		fmt.Println("Learning feed:")
		for _, item := range a.LearningSuggestions {
			fmt.Printf("  - %s\n", item)
		}
		fmt.Println()
	}

	if len(a.ImplementationPrompts) > 0 {
		fmt.Println("Try recording:")
		for _, prompt := range a.ImplementationPrompts {
			fmt.Printf("  - %s\n", prompt)
		}
		fmt.Println()
	}

	fmt.Printf("This week's challenge: %s\n", balance.WeeklyChallenge(time.Now()))
}

func init() {
	gymCmd.Flags().Bool("json", false, "output the snapshot as JSON")
	gymCmd.Flags().String("export", "", "write the snapshot to a YAML file")

	rootCmd.AddCommand(gymCmd)
}
