// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIProvider selects the remote text-generation backend.
type AIProvider string

const (
	ProviderAnthropic AIProvider = "anthropic"
	ProviderGemini    AIProvider = "gemini"
	ProviderOllama    AIProvider = "ollama"
)

// AIConfig holds settings for the generative text service. An empty
// Provider disables the remote path entirely; every consumer then uses
// its deterministic fallback.
type AIConfig struct {
	// Provider selects the backend: anthropic, gemini, or ollama.
	// Empty means no remote service.
	Provider AIProvider `json:"provider,omitempty" yaml:"provider,omitempty"`

	// Model is the model identifier (e.g. "claude-3-5-haiku-latest").
	// Backends fall back to a provider default when empty.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey authenticates against the provider. Usually supplied via
	// .secrets/ rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout bounds a single generation call (default 30s). There are no
	// retries: a failed call immediately falls back.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// StudioConfig groups all settings for the brand-studio CLI.
type StudioConfig struct {
	// DataDir is the directory holding the SQLite database (default ".").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// AI configures the remote text-generation service.
	AI AIConfig `json:"ai" yaml:"ai"`
}
