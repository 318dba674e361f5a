// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// anthropicAPIURL is the Messages API endpoint. Package-level var for test
// substitution.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

const (
	anthropicDefaultModel = "claude-3-5-haiku-latest"
	anthropicVersion      = "2023-06-01"
)

// AnthropicBackend calls the Anthropic Messages API.
type AnthropicBackend struct {
	APIKey string
	Model  string
	Client *http.Client
}

var _ Generator = (*AnthropicBackend)(nil)

// anthropicRequest is the request body for the Messages API.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the conversation.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Messages API.
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// anthropicContent is a content block in the response.
type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Generate sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (b *AnthropicBackend) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	model := b.Model
	if model == "" {
		model = anthropicDefaultModel
	}

	reqBody := anthropicRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", b.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API returned %d: %s", resp.StatusCode, string(body))
	}

	var aResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&aResp); err != nil {
		return "", fmt.Errorf("decoding Anthropic response: %w", err)
	}

	var out bytes.Buffer
	for _, block := range aResp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("Anthropic API returned no text content")
	}
	return out.String(), nil
}
