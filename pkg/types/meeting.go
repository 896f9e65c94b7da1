// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model and configuration structs shared
// across the sync stages.
package types

// Meeting is one recorded conversation session as returned by the Granola
// documents endpoint. Immutable once fetched; lifecycle is fetch → filter
// → consume.
type Meeting struct {
	ID string `json:"id"`

	// Title may be empty; consumers substitute "Untitled Meeting".
	Title string `json:"title"`

	// CreatedAt is the ISO-8601 creation timestamp, kept as the raw
	// string because date selection is a string-prefix test.
	CreatedAt string `json:"created_at"`
}

// Panel is an AI-generated content block attached to a meeting. Only the
// panel titled "Summary" is consumed by the sync.
type Panel struct {
	Title string `json:"title"`

	// OriginalContent is the panel body as an HTML fragment.
	OriginalContent string `json:"original_content"`
}

// TranscriptSegment is one utterance span of a meeting transcript. Segment
// order is speaking order and must be preserved.
type TranscriptSegment struct {
	Text string `json:"text"`

	// Source is the audio channel: "microphone" for the local speaker,
	// anything else ("system", "unknown") for device audio.
	Source string `json:"source"`
}
