// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehartwell/brand-studio/pkg/types"
)

func TestFromConfigEmptyProvider(t *testing.T) {
	gen, err := FromConfig(context.Background(), types.AIConfig{})
	require.NoError(t, err)
	assert.Nil(t, gen)
}

func TestFromConfigUnknownProvider(t *testing.T) {
	_, err := FromConfig(context.Background(), types.AIConfig{Provider: "cohere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ai provider")
}

func TestFromConfigAnthropicRequiresKey(t *testing.T) {
	_, err := FromConfig(context.Background(), types.AIConfig{Provider: types.ProviderAnthropic})
	require.Error(t, err)
}

func TestFromConfigAnthropic(t *testing.T) {
	gen, err := FromConfig(context.Background(), types.AIConfig{
		Provider: types.ProviderAnthropic,
		APIKey:   "test-key",
		Model:    "claude-3-5-haiku-latest",
	})
	require.NoError(t, err)
	require.IsType(t, &AnthropicBackend{}, gen)
}

func TestAnthropicGenerate(t *testing.T) {
	var gotReq anthropicRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := anthropicResponse{Content: []anthropicContent{
			{Type: "text", Text: "leadership, strategy"},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	orig := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = orig }()

	backend := &AnthropicBackend{APIKey: "test-key", Client: ts.Client()}
	out, err := backend.Generate(context.Background(), "classify this", 100)
	require.NoError(t, err)

	assert.Equal(t, "leadership, strategy", out)
	assert.Equal(t, anthropicDefaultModel, gotReq.Model)
	assert.Equal(t, 100, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "classify this", gotReq.Messages[0].Content)
}

func TestAnthropicGenerateErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"type":"authentication_error"}}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	orig := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = orig }()

	backend := &AnthropicBackend{APIKey: "bad-key", Client: ts.Client()}
	_, err := backend.Generate(context.Background(), "hello", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestAnthropicGenerateNoText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(anthropicResponse{})
	}))
	defer ts.Close()

	orig := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = orig }()

	backend := &AnthropicBackend{APIKey: "test-key", Client: ts.Client()}
	_, err := backend.Generate(context.Background(), "hello", 100)
	require.Error(t, err)
}
