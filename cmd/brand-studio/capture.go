// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehartwell/brand-studio/internal/ai"
	"github.com/ehartwell/brand-studio/internal/classify"
	"github.com/ehartwell/brand-studio/pkg/types"
)

var captureCmd = &cobra.Command{
	Use:   "capture [text...]",
	Short: "Capture a thought and classify it into content themes",
	Long: `Capture saves a transcript as a processed note. The text is classified
against the theme vocabulary (up to 3 themes per note) before saving, using
the configured AI provider or the built-in keyword matcher.

The transcript comes from positional arguments or --file. An optional --audio
flag records a reference to the source recording; no transcription happens.`,
	RunE: runCapture,
}

func runCapture(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	audio, _ := cmd.Flags().GetString("audio")

	transcript := strings.Join(args, " ")
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading transcript file: %w", err)
		}
		transcript = string(data)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return fmt.Errorf("nothing to capture: pass text or --file")
	}

	cfg := studioConfig(cmd)
	ctx := context.Background()

	gen, err := ai.FromConfig(ctx, cfg.AI)
	if err != nil {
		return err
	}

	themes := classify.New(gen).Classify(ctx, transcript)

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.SaveNote(types.Note{
		Transcript: transcript,
		Themes:     themes,
		AudioPath:  audio,
		Processed:  true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Captured note %d\n", id)
	fmt.Printf("Themes: %s\n", strings.Join(themes, ", "))
	return nil
}

func init() {
	captureCmd.Flags().String("file", "", "read the transcript from a file")
	captureCmd.Flags().String("audio", "", "reference to the source audio recording")

	rootCmd.AddCommand(captureCmd)
}
