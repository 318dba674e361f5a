// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brand-studio CLI.
//
// brand-studio turns spoken-thought transcripts into publishable content:
// capture notes, classify them against a fixed theme vocabulary, synthesize
// drafts in several formats, move drafts through a review workflow, and
// analyze the resulting theme mix against an ideal distribution.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ehartwell/brand-studio/internal/secrets"
	"github.com/ehartwell/brand-studio/internal/store"
	"github.com/ehartwell/brand-studio/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the brand-studio CLI.
var rootCmd = &cobra.Command{
	Use:   "brand-studio",
	Short: "Personal brand content production from voice-note transcripts",
	Long: `brand-studio is a content production assistant for building a personal
brand. Capture a thought as a transcript and it is classified against a fixed
theme vocabulary; generate turns a note into platform-ready drafts; library
moves drafts through draft, approved, scheduled, and published; calendar and
gym report on cadence and theme balance.

AI-backed classification and synthesis are optional. Without a configured
provider every operation still works through deterministic fallbacks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brand-studio.yaml or ~/.config/brand-studio/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the studio database (default: .)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brand-studio")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brand-studio"))
		}
	}

	viper.SetEnvPrefix("BRAND_STUDIO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// studioConfig assembles the runtime configuration from flags, the config
// file, and loaded secrets. Flag > config file > secret.
func studioConfig(cmd *cobra.Command) types.StudioConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	if dataDir == "" {
		dataDir = "."
	}

	provider := types.AIProvider(viper.GetString("ai.provider"))

	var apiKey string
	switch provider {
	case types.ProviderAnthropic:
		apiKey = secretDefault("anthropic-api-key", viper.GetString("ai.api_key"))
	case types.ProviderGemini:
		apiKey = secretDefault("gemini-api-key", viper.GetString("ai.api_key"))
	}

	return types.StudioConfig{
		DataDir: dataDir,
		AI: types.AIConfig{
			Provider: provider,
			Model:    viper.GetString("ai.model"),
			APIKey:   apiKey,
			Timeout:  viper.GetDuration("ai.timeout"),
		},
	}
}

// openStore opens the studio database under the configured data directory.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg := studioConfig(cmd)
	return store.Open(cfg.DataDir)
}

// requireProfile loads the active profile, erroring when setup has not run.
func requireProfile(s *store.Store) (*types.Profile, error) {
	p, err := s.LatestProfile()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no profile configured: run 'brand-studio profile set' first")
	}
	return p, nil
}

// parseWhen accepts the timestamp formats the schedule flag recognizes.
func parseWhen(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q: use RFC3339, \"2006-01-02 15:04\", or \"2006-01-02\"", value)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
