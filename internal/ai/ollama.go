// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
)

const ollamaDefaultModel = "llama3.2"

// OllamaBackend generates text through a local Ollama server. Endpoint
// selection follows the standard OLLAMA_HOST environment variable.
type OllamaBackend struct {
	client *api.Client
	model  string
}

var _ Generator = (*OllamaBackend)(nil)

// NewOllamaBackend creates a client for the local Ollama server.
func NewOllamaBackend(model string) (*OllamaBackend, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}
	if model == "" {
		model = ollamaDefaultModel
	}
	return &OllamaBackend{client: client, model: model}, nil
}

// Generate runs a non-streaming completion and returns the response text.
func (b *OllamaBackend) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  b.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"num_predict": maxTokens,
		},
	}

	var sb strings.Builder
	err := b.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("calling ollama: %w", err)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("ollama returned empty response")
	}
	return sb.String(), nil
}
