// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai abstracts the external text-generation service behind a
// Generator interface. Backends exist for the Anthropic Messages API,
// Google Gemini, and a local Ollama server; which one is used is decided
// once at startup from configuration. Callers must treat the service as
// unreliable: every consumer pairs a Generator with a deterministic
// fallback and a nil Generator is a valid "no remote service" value.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ehartwell/brand-studio/pkg/types"
)

// Generator produces text from an instruction prompt. Implementations make
// a single blocking attempt; there is no retry policy.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

const defaultTimeout = 30 * time.Second

// FromConfig constructs the Generator named by cfg.Provider. An empty
// provider returns (nil, nil): the studio runs on fallbacks alone. An
// unknown provider is a configuration error surfaced at startup, not at
// call time.
func FromConfig(ctx context.Context, cfg types.AIConfig) (Generator, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	switch cfg.Provider {
	case "":
		return nil, nil
	case types.ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic provider requires an API key")
		}
		return &AnthropicBackend{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			Client: &http.Client{Timeout: timeout},
		}, nil
	case types.ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return NewGeminiBackend(ctx, cfg.APIKey, cfg.Model)
	case types.ProviderOllama:
		return NewOllamaBackend(cfg.Model)
	default:
		return nil, fmt.Errorf("unknown ai provider %q: use anthropic, gemini, or ollama", cfg.Provider)
	}
}
