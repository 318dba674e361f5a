// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synthesize turns a note transcript into platform-specific content.
// The primary path prompts the remote text service with a format-specific
// instruction; any failure falls back silently to fixed templates. The
// result is always a usable string, never an error.
package synthesize

import (
	"context"
	"fmt"
	"strings"

	"github.com/ehartwell/brand-studio/internal/ai"
	"github.com/ehartwell/brand-studio/pkg/types"
)

// synthesizeMaxTokens is the token budget for a generation call.
const synthesizeMaxTokens = 500

// linkedInPrompt is the fixed persona prompt for LinkedIn posts. It
// overrides the profile tone: the voice is part of the format.
const linkedInPrompt = `You're a GPT designed to write in a warm, conversational tone with a mix of playful corporate humor, polished storytelling, and confident-but-approachable style. Your writing should feel like a senior leader chatting with a colleague over coffee—part mentor, part meme-sharer. You sound friendly and personable, but you're also sharp and narrative-driven. Prioritize short to medium-length sentences, and lean into a casual rhythm with professional polish. Avoid jargon or cliché phrases like "here's the kicker."

Style Guide:
- Write in first-person, as if narrating your own experience
- Blend personal anecdotes, quick insights, and useful advice
- Be casually witty, slightly self-deprecating, and confidently insightful
- Use vivid, concrete language and sensory phrasing when appropriate
- Switch between short, punchy sentences and longer, flowing ones
- Infuse a multichannel brand energy (LinkedIn, events, personal wins)
- Position achievements with humility and humor (e.g. "wear many hats," "accidentally went viral")
- Think of it like storytelling-meets-LinkedIn-meets-slide-deck-afterparty

Tone: Friendly, energetic, and self-aware. Confident but never arrogant. Lightly pokes fun at corporate norms (while clearly understanding them). A mix of real-life reflections, data points, memes, and insights. You're not just here to inform—you're here to connect, inspire, and make the reader smile (or snort-laugh) while learning something useful.

Create a LinkedIn post based on this content. Keep it under 1300 characters and include relevant hashtags.`

// promptFor builds the instruction for a format. Unknown formats get the
// generic business-content instruction.
func promptFor(format types.Format, tone string) string {
	switch format {
	case types.FormatLinkedIn:
		return linkedInPrompt
	case types.FormatVideoScript:
		return fmt.Sprintf("Create a 60-90 second video script in a %s tone based on this content. Include clear talking points and engagement hooks.", tone)
	case types.FormatNewsletter:
		return fmt.Sprintf("Create a newsletter snippet in a %s tone based on this content. Make it informative and actionable for business leaders.", tone)
	default:
		return fmt.Sprintf("Create engaging business content in a %s tone.", tone)
	}
}

// Synthesize produces content for transcript in the given format and tone.
// Remote-service failures are never surfaced; the template fallback
// answers instead. For an unknown format the transcript is returned
// verbatim.
func Synthesize(ctx context.Context, gen ai.Generator, transcript string, format types.Format, tone string) string {
	if gen != nil {
		prompt := promptFor(format, tone) + "\n\nContent:\n" + transcript
		out, err := gen.Generate(ctx, prompt, synthesizeMaxTokens)
		if err == nil && strings.TrimSpace(out) != "" {
			return strings.TrimSpace(out)
		}
	}
	return Template(transcript, format)
}

// Template renders the deterministic fallback for a format. It is total:
// the three known formats always yield a non-empty, well-formed string,
// even for an empty transcript; unknown formats return the transcript
// unchanged.
func Template(transcript string, format types.Format) string {
	switch format {
	case types.FormatLinkedIn:
		return fmt.Sprintf(`Just had one of those lightbulb moments...

%s...

Anyone else experiencing this? Drop your thoughts below – I'm genuinely curious what your take is! 👇

(And yes, I may have overthought this during my third coffee of the day ☕)

#Leadership #RealTalk #CorporateLife #Growth`, prefix(transcript, 200))

	case types.FormatVideoScript:
		return fmt.Sprintf(`[HOOK] Okay, so this just happened and I had to share...

[MAIN POINT] %s...

[PERSONAL TOUCH] Classic case of "learn something new every day," right?

[CALL TO ACTION] What's your experience with this? I'd love to hear your stories in the comments!

[DURATION: 60-90 seconds]`, prefix(transcript, 150))

	case types.FormatNewsletter:
		return fmt.Sprintf(`💡 **This Week's "Aha!" Moment**

So here's what went down this week...

%s...

**The Real Talk:** Sometimes the best insights come from the most unexpected places. (Who knew?)

**Your Move:** Take a moment to think about where your latest breakthrough came from. I bet it wasn't where you expected.

Stay curious ✨`, prefix(transcript, 300))

	default:
		return transcript
	}
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
