// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blocks assembles markdown fragments into the block structures
// the Craft.do API expects. Pure data transformation; no I/O.
package blocks

import (
	"time"

	"github.com/pdiddy/granola-sync/pkg/types"
)

const (
	// DefaultTitle substitutes for a missing or empty meeting title.
	DefaultTitle = "Untitled Meeting"

	// NoSummary substitutes for a meeting without usable summary markdown.
	NoSummary = "No summary available."

	// maxTranscriptChars caps the transcript embedded in the page block.
	// Transcripts strictly longer than this are cut and marked; one of
	// exactly this length passes through untouched.
	maxTranscriptChars = 50000

	truncationNotice = "\n\n... (transcript too long, truncated)"
)

const dateFmt = "2006-01-02"

// Header builds the single h1 block submitted once per sync run, ahead of
// any meeting.
func Header(target time.Time) []types.Block {
	return []types.Block{{
		Type:      "text",
		TextStyle: "h1",
		Markdown:  "☕️ Granola Meetings (" + target.Format(dateFmt) + ")",
	}}
}

// Meeting builds the fixed four-block group for one meeting: h2 title,
// summary text, a transcript sub-page, and a "---" separator. Missing
// title or summary degrade to placeholders; the group shape never varies.
func Meeting(title, summaryMD, transcriptMD string) []types.Block {
	if title == "" {
		title = DefaultTitle
	}
	if summaryMD == "" {
		summaryMD = NoSummary
	}

	return []types.Block{
		{
			Type:      "text",
			TextStyle: "h2",
			Markdown:  title,
		},
		{
			Type:     "text",
			Markdown: summaryMD,
		},
		{
			Type:      "page",
			TextStyle: "card",
			Markdown:  "📄 Full Transcript",
			Content: []types.Block{
				{
					Type:     "text",
					Markdown: truncateTranscript(transcriptMD),
				},
			},
		},
		{
			Type:     "text",
			Markdown: "---",
		},
	}
}

// truncateTranscript enforces maxTranscriptChars, counting characters the
// way the destination does (runes, not bytes).
func truncateTranscript(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTranscriptChars {
		return s
	}
	return string(runes[:maxTranscriptChars]) + truncationNotice
}
