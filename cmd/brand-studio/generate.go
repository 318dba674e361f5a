// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehartwell/brand-studio/internal/ai"
	"github.com/ehartwell/brand-studio/internal/synthesize"
	"github.com/ehartwell/brand-studio/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize content drafts from a captured note",
	Long: `Generate turns a note's transcript into a draft in the requested format:
linkedin, video_script, or newsletter. The active profile's tone shapes the
output. With --all, one draft per format is produced.

Drafts start in status "draft"; use the library subcommands to move them
through the review workflow.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	noteID, _ := cmd.Flags().GetInt64("note")
	formatName, _ := cmd.Flags().GetString("format")
	all, _ := cmd.Flags().GetBool("all")

	if noteID <= 0 {
		return fmt.Errorf("--note is required")
	}

	formats := types.Formats
	if !all {
		f := types.Format(formatName)
		if !f.Valid() {
			return fmt.Errorf("invalid format %q: use one of %v, or --all", formatName, types.Formats)
		}
		formats = []types.Format{f}
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	profile, err := requireProfile(s)
	if err != nil {
		return err
	}
	note, err := s.Note(noteID)
	if err != nil {
		return err
	}

	cfg := studioConfig(cmd)
	ctx := context.Background()

	gen, err := ai.FromConfig(ctx, cfg.AI)
	if err != nil {
		return err
	}

	for _, format := range formats {
		content := synthesize.Synthesize(ctx, gen, note.Transcript, format, string(profile.Tone))

		id, err := s.SaveDraft(types.Draft{
			NoteID:  noteID,
			Format:  format,
			Content: content,
			Status:  types.StatusDraft,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Draft %d (%s)\n", id, format)
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println(content)
		fmt.Println()
	}
	return nil
}

func init() {
	generateCmd.Flags().Int64("note", 0, "note ID to generate from")
	generateCmd.Flags().String("format", string(types.FormatLinkedIn), "output format: linkedin, video_script, newsletter")
	generateCmd.Flags().Bool("all", false, "generate a draft in every format")

	rootCmd.AddCommand(generateCmd)
}
