// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehartwell/brand-studio/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the brand profile (name, role, tone, cadence)",
	Long: `Profile holds who you are and how you want to sound. The most recently
saved profile is the active one; generation reads its tone and the calendar
reads its posting frequency.`,
}

// --- set subcommand ---

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the brand profile",
	RunE:  runProfileSet,
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	company, _ := cmd.Flags().GetString("company")
	tone, _ := cmd.Flags().GetString("tone")
	frequency, _ := cmd.Flags().GetString("frequency")
	interests, _ := cmd.Flags().GetStringArray("interest")

	if strings.TrimSpace(name) == "" || strings.TrimSpace(role) == "" {
		return fmt.Errorf("--name and --role are required")
	}

	p := types.Profile{
		Name:             strings.TrimSpace(name),
		Role:             strings.TrimSpace(role),
		Company:          strings.TrimSpace(company),
		Tone:             types.Tone(tone),
		PostingFrequency: types.PostingFrequency(frequency),
		Interests:        interests,
	}
	if !p.Tone.Valid() {
		return fmt.Errorf("invalid tone %q: use one of %v", tone, types.Tones)
	}
	if !p.PostingFrequency.Valid() {
		return fmt.Errorf("invalid frequency %q: use one of %v", frequency, types.Frequencies)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.SaveProfile(p); err != nil {
		return err
	}

	fmt.Printf("Profile saved for %s (%s)\n", p.Name, p.Role)
	return nil
}

// --- show subcommand ---

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active brand profile",
	RunE:  runProfileShow,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.LatestProfile()
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Println("No profile configured. Run 'brand-studio profile set' to create one.")
		return nil
	}

	fmt.Printf("Name:      %s\n", p.Name)
	fmt.Printf("Role:      %s\n", p.Role)
	if p.Company != "" {
		fmt.Printf("Company:   %s\n", p.Company)
	}
	fmt.Printf("Tone:      %s\n", p.Tone)
	fmt.Printf("Frequency: %s\n", p.PostingFrequency)
	if len(p.Interests) > 0 {
		fmt.Printf("Interests: %s\n", strings.Join(p.Interests, ", "))
	}
	return nil
}

func init() {
	profileSetCmd.Flags().String("name", "", "your name")
	profileSetCmd.Flags().String("role", "", "your role or title")
	profileSetCmd.Flags().String("company", "", "company or organization")
	profileSetCmd.Flags().String("tone", string(types.ToneProfessional), "content tone: professional, conversational, inspirational, analytical, storytelling")
	profileSetCmd.Flags().String("frequency", string(types.FrequencyWeekly), "posting frequency: daily, every_other_day, weekly, bi-weekly")
	profileSetCmd.Flags().StringArray("interest", nil, "content interest (repeatable)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	rootCmd.AddCommand(profileCmd)
}
