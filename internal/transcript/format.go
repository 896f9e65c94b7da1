// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript renders an ordered sequence of speech segments as a
// readable markdown text block.
package transcript

import (
	"strings"

	"github.com/pdiddy/granola-sync/pkg/types"
)

// NoTranscript is the placeholder emitted when a meeting has no transcript.
const NoTranscript = "No transcript available."

// sourceMicrophone marks segments captured from the local speaker's
// microphone; every other source is treated as device audio.
const sourceMicrophone = "microphone"

// Format renders segments in speaking order, one paragraph per utterance,
// prefixed with a glyph for the audio channel. Segments whose text trims
// to nothing are skipped. An empty or nil sequence yields NoTranscript.
func Format(segments []types.TranscriptSegment) string {
	if len(segments) == 0 {
		return NoTranscript
	}

	var b strings.Builder
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if seg.Source == sourceMicrophone {
			b.WriteString("🎙️ ")
		} else {
			b.WriteString("💻 ")
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
