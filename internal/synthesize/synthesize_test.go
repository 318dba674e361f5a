// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehartwell/brand-studio/pkg/types"
)

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

func TestTemplateTotal(t *testing.T) {
	transcripts := []string{"", "short note", strings.Repeat("x", 1000)}
	for _, transcript := range transcripts {
		for _, format := range types.Formats {
			out := Template(transcript, format)
			assert.NotEmpty(t, out, "format %s, transcript len %d", format, len(transcript))
		}
	}
}

func TestTemplateUnknownFormatIsIdentity(t *testing.T) {
	assert.Equal(t, "raw transcript", Template("raw transcript", types.Format("tiktok")))
	assert.Equal(t, "", Template("", types.Format("tiktok")))
}

func TestTemplateTruncation(t *testing.T) {
	long := strings.Repeat("a", 500)

	linkedin := Template(long, types.FormatLinkedIn)
	assert.Contains(t, linkedin, strings.Repeat("a", 200))
	assert.NotContains(t, linkedin, strings.Repeat("a", 201))

	video := Template(long, types.FormatVideoScript)
	assert.Contains(t, video, strings.Repeat("a", 150))
	assert.NotContains(t, video, strings.Repeat("a", 151))

	newsletter := Template(long, types.FormatNewsletter)
	assert.Contains(t, newsletter, strings.Repeat("a", 300))
	assert.NotContains(t, newsletter, strings.Repeat("a", 301))
}

func TestSynthesizeRemotePath(t *testing.T) {
	gen := &fakeGen{resp: "  generated post  "}

	out := Synthesize(context.Background(), gen, "my transcript", types.FormatNewsletter, "analytical")
	assert.Equal(t, "generated post", out)
	assert.Equal(t, synthesizeMaxTokens, gen.gotTokens)
	assert.Contains(t, gen.gotPrompt, "my transcript")
	assert.Contains(t, gen.gotPrompt, "analytical")
}

func TestSynthesizeLinkedInIgnoresTone(t *testing.T) {
	gen := &fakeGen{resp: "post"}

	Synthesize(context.Background(), gen, "transcript", types.FormatLinkedIn, "analytical")
	assert.Contains(t, gen.gotPrompt, "1300 characters")
	assert.NotContains(t, gen.gotPrompt, "analytical tone")
}

func TestSynthesizeFallsBackOnError(t *testing.T) {
	gen := &fakeGen{err: errors.New("quota exceeded")}

	out := Synthesize(context.Background(), gen, "my transcript", types.FormatVideoScript, "casual")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "[HOOK]")
	assert.Contains(t, out, "my transcript")
}

func TestSynthesizeFallsBackOnBlankResponse(t *testing.T) {
	gen := &fakeGen{resp: "   \n"}

	out := Synthesize(context.Background(), gen, "note text", types.FormatLinkedIn, "casual")
	assert.Contains(t, out, "note text")
	assert.Contains(t, out, "#Leadership")
}

func TestSynthesizeNilGeneratorUsesTemplate(t *testing.T) {
	out := Synthesize(context.Background(), nil, "note text", types.FormatNewsletter, "casual")
	assert.Contains(t, out, "note text")
	assert.Contains(t, out, "Aha!")
}
