// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehartwell/brand-studio/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse and manage the draft library",
	Long: `Library lists generated drafts and moves them through the workflow:
draft, approved, scheduled, published. Draft content can be edited in place;
the captured notes themselves are immutable.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts, optionally filtered by status",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	statusName, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	drafts, err := s.Drafts(types.DraftStatus(statusName))
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(drafts)
	}

	if len(drafts) == 0 {
		fmt.Println("No drafts found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-9s  %-16s  %s\n",
		"ID", "Format", "Status", "Scheduled", "Content")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, d := range drafts {
		scheduled := "-"
		if d.ScheduledAt != nil {
			scheduled = d.ScheduledAt.Format("2006-01-02 15:04")
		}
		content := ellipsize(strings.ReplaceAll(d.Content, "\n", " "), 40)
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-9s  %-16s  %s\n",
			d.ID, d.Format, d.Status, scheduled, content)
	}

	fmt.Fprintf(os.Stdout, "\n%d drafts\n", len(drafts))
	return nil
}

// --- show subcommand ---

var libraryShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a draft in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	id, err := parseDraftID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.Draft(id)
	if err != nil {
		return err
	}

	fmt.Printf("Draft %d  (note %d, %s, %s)\n", d.ID, d.NoteID, d.Format, d.Status)
	if d.ScheduledAt != nil {
		fmt.Printf("Scheduled: %s\n", d.ScheduledAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(d.Content)
	return nil
}

// --- status subcommands ---

var libraryApproveCmd = &cobra.Command{
	Use:   "approve ID",
	Short: "Mark a draft as approved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDraftStatus(cmd, args[0], types.StatusApproved)
	},
}

var libraryScheduleCmd = &cobra.Command{
	Use:   "schedule ID --at TIME",
	Short: "Schedule an approved draft for publication",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibrarySchedule,
}

func runLibrarySchedule(cmd *cobra.Command, args []string) error {
	id, err := parseDraftID(args[0])
	if err != nil {
		return err
	}
	at, _ := cmd.Flags().GetString("at")
	if at == "" {
		return fmt.Errorf("--at is required")
	}
	when, err := parseWhen(at)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateDraftStatus(id, types.StatusScheduled, &when); err != nil {
		return err
	}
	fmt.Printf("Draft %d scheduled for %s\n", id, when.Format("2006-01-02 15:04"))
	return nil
}

var libraryPublishCmd = &cobra.Command{
	Use:   "publish ID",
	Short: "Mark a draft as published",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDraftStatus(cmd, args[0], types.StatusPublished)
	},
}

func setDraftStatus(cmd *cobra.Command, arg string, status types.DraftStatus) error {
	id, err := parseDraftID(arg)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateDraftStatus(id, status, nil); err != nil {
		return err
	}
	fmt.Printf("Draft %d is now %s\n", id, status)
	return nil
}

// --- edit subcommand ---

var libraryEditCmd = &cobra.Command{
	Use:   "edit ID --content TEXT",
	Short: "Replace a draft's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryEdit,
}

func runLibraryEdit(cmd *cobra.Command, args []string) error {
	id, err := parseDraftID(args[0])
	if err != nil {
		return err
	}
	content, _ := cmd.Flags().GetString("content")
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading content file: %w", err)
		}
		content = string(data)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("--content or --file is required")
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateDraftContent(id, content); err != nil {
		return err
	}
	fmt.Printf("Draft %d updated\n", id)
	return nil
}

// --- delete subcommand ---

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryDelete,
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseDraftID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteDraft(id); err != nil {
		return err
	}
	fmt.Printf("Draft %d deleted\n", id)
	return nil
}

// ellipsize caps s at n runes, marking the cut with "...". Slicing by
// runes keeps multibyte characters intact in table output.
func ellipsize(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func parseDraftID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid draft ID %q", arg)
	}
	return id, nil
}

func init() {
	libraryListCmd.Flags().String("status", "", "filter by status: draft, approved, scheduled, published")
	libraryListCmd.Flags().Bool("json", false, "output drafts as JSON")

	libraryScheduleCmd.Flags().String("at", "", "publication time (RFC3339, \"2006-01-02 15:04\", or \"2006-01-02\")")

	libraryEditCmd.Flags().String("content", "", "replacement draft text")
	libraryEditCmd.Flags().String("file", "", "read replacement text from a file")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryApproveCmd)
	libraryCmd.AddCommand(libraryScheduleCmd)
	libraryCmd.AddCommand(libraryPublishCmd)
	libraryCmd.AddCommand(libraryEditCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)

	rootCmd.AddCommand(libraryCmd)
}
