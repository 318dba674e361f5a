// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeGen is a canned Generator for tests.
type fakeGen struct {
	resp      string
	err       error
	gotPrompt string
	gotTokens int
}

func (f *fakeGen) Generate(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.gotPrompt = prompt
	f.gotTokens = maxTokens
	return f.resp, f.err
}

func TestKeywordThemes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "leadership keywords only",
			text: "A tough decision about our long-term vision.",
			want: []string{"leadership"},
		},
		{
			name: "case insensitive",
			text: "The DECISION was hard.",
			want: []string{"leadership"},
		},
		{
			name: "four categories capped at three in enumeration order",
			text: "Our product launch, the market shift, my personal journey, and customer feedback.",
			want: []string{"product", "industry insights", "personal story"},
		},
		{
			name: "no keywords",
			text: "Hello world.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "keyword appears inside larger word",
			text: "Misleading claims everywhere.",
			want: []string{"leadership"}, // "lead" substring match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordThemes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeywordThemes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyRemotePath(t *testing.T) {
	gen := &fakeGen{resp: "Leadership, Strategy , , not-a-theme"}
	c := New(gen)

	got := c.Classify(context.Background(), "some transcript")
	want := []string{"leadership", "strategy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
	if gen.gotTokens != classifyMaxTokens {
		t.Errorf("token budget = %d, want %d", gen.gotTokens, classifyMaxTokens)
	}
	if !strings.Contains(gen.gotPrompt, "some transcript") {
		t.Error("prompt does not carry the transcript")
	}
}

func TestClassifyRemoteCapsAtThree(t *testing.T) {
	gen := &fakeGen{resp: "leadership, strategy, innovation, product, market trends"}
	c := New(gen)

	got := c.Classify(context.Background(), "text")
	want := []string{"leadership", "strategy", "innovation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyRemoteDeduplicates(t *testing.T) {
	gen := &fakeGen{resp: "leadership, Leadership, strategy"}
	c := New(gen)

	got := c.Classify(context.Background(), "text")
	want := []string{"leadership", "strategy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyFallsBackOnError(t *testing.T) {
	gen := &fakeGen{err: errors.New("service unavailable")}
	c := New(gen)

	got := c.Classify(context.Background(), "A tough decision about our vision.")
	want := []string{"leadership"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyFallsBackOnUnparseableResponse(t *testing.T) {
	gen := &fakeGen{resp: "I could not determine any themes for this content."}
	c := New(gen)

	got := c.Classify(context.Background(), "A tough decision about our vision.")
	want := []string{"leadership"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyNilGeneratorUsesFallback(t *testing.T) {
	c := New(nil)

	got := c.Classify(context.Background(), "Our new product feature.")
	want := []string{"product", "innovation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}
