// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiBackend calls the Google Gemini API through the genai client.
type GeminiBackend struct {
	client    *genai.Client
	modelName string
}

var _ Generator = (*GeminiBackend)(nil)

// NewGeminiBackend creates a Gemini client authenticated with apiKey.
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &GeminiBackend{client: client, modelName: model}, nil
}

// Close releases the underlying gRPC connection.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// Generate prompts the model and returns the concatenated text parts of
// the first candidate.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	model := b.client.GenerativeModel(b.modelName)
	model.SetMaxOutputTokens(int32(maxTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return sb.String(), nil
}
