// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List recently captured notes",
	Long: `Notes lists captured notes newest-first with their classified themes.
Use a note's ID with 'brand-studio generate --note'.`,
	RunE: runNotes,
}

func runNotes(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	notes, err := s.RecentNotes(limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Println("No notes captured yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-40s  %s\n", "ID", "Captured", "Themes", "Transcript")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, n := range notes {
		transcript := ellipsize(strings.ReplaceAll(n.Transcript, "\n", " "), 40)
		themes := ellipsize(strings.Join(n.Themes, ", "), 40)
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-40s  %s\n",
			n.ID, n.CreatedAt.Format("2006-01-02 15:04"), themes, transcript)
	}

	fmt.Fprintf(os.Stdout, "\n%d notes\n", len(notes))
	return nil
}

func init() {
	notesCmd.Flags().Int("limit", 10, "maximum notes to list")
	notesCmd.Flags().Bool("json", false, "output notes as JSON")

	rootCmd.AddCommand(notesCmd)
}
