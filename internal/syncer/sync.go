// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package syncer drives one sync run: select a day's meetings from the
// source, convert their content, and submit block groups to the sink.
package syncer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/granola-sync/internal/blocks"
	"github.com/pdiddy/granola-sync/internal/markup"
	"github.com/pdiddy/granola-sync/internal/transcript"
	"github.com/pdiddy/granola-sync/pkg/types"
)

// summaryPanelTitle is matched exactly (case-sensitive) against panel titles.
const summaryPanelTitle = "Summary"

// Source lists meetings and fetches their panels and transcripts.
type Source interface {
	Meetings(ctx context.Context) ([]types.Meeting, error)
	Panels(ctx context.Context, meetingID string) ([]types.Panel, error)
	Transcript(ctx context.Context, meetingID string) ([]types.TranscriptSegment, error)
}

// Sink receives block submissions for a target date.
type Sink interface {
	AppendBlocks(ctx context.Context, blocks []types.Block, targetDateISO string) error
}

// Result summarizes one sync run. Fetch failures degrade to empty data and
// are only warned about; Errors holds the submission failures.
type Result struct {
	Date   string
	Found  int
	Synced int
	Failed int
	Errors []string
}

// Run syncs all meetings created on the target date. Meetings are
// processed strictly in order, one at a time. The header is submitted
// once, on its own, before any meeting; each meeting's block group is one
// submission. A failed submission is recorded and the run continues with
// the next meeting. Progress and warnings go to w.
func Run(ctx context.Context, src Source, sink Sink, target time.Time, w io.Writer) Result {
	dateISO := target.Format(dateFmt)
	res := Result{Date: dateISO}

	fmt.Fprintf(w, "Starting Granola sync for %s...\n", dateISO)

	meetings, err := src.Meetings(ctx)
	if err != nil {
		fmt.Fprintf(w, "warning: fetching meetings failed: %v\n", err)
	}

	selected := FilterByDate(meetings, target)
	res.Found = len(selected)
	if len(selected) == 0 {
		fmt.Fprintf(w, "No meetings found for %s.\n", dateISO)
		return res
	}
	fmt.Fprintf(w, "Found %d meeting(s). Syncing one by one...\n", len(selected))

	if err := sink.AppendBlocks(ctx, blocks.Header(target), dateISO); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("header: %v", err))
		fmt.Fprintf(w, "warning: header submission failed: %v\n", err)
	}

	for _, m := range selected {
		title := m.Title
		if title == "" {
			title = blocks.DefaultTitle
		}
		fmt.Fprintf(w, "Syncing: %s...\n", title)

		group := blocks.Meeting(title, fetchSummary(ctx, src, m.ID, w), fetchTranscript(ctx, src, m.ID, w))

		if err := sink.AppendBlocks(ctx, group, dateISO); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", title, err))
			fmt.Fprintf(w, "❌ Failed to sync: %s (%v)\n", title, err)
			continue
		}
		res.Synced++
		fmt.Fprintf(w, "✅ Successfully synced: %s\n", title)
	}

	return res
}

// fetchSummary returns the converted markdown of the meeting's Summary
// panel, or "" when the fetch fails or no Summary panel exists. The first
// exact-title match wins.
func fetchSummary(ctx context.Context, src Source, meetingID string, w io.Writer) string {
	panels, err := src.Panels(ctx, meetingID)
	if err != nil {
		fmt.Fprintf(w, "warning: fetching panels for %s failed: %v\n", meetingID, err)
		return ""
	}
	for _, p := range panels {
		if p.Title == summaryPanelTitle {
			return markup.Convert(p.OriginalContent)
		}
	}
	return ""
}

// fetchTranscript returns the formatted transcript; a failed fetch
// degrades to the no-transcript placeholder.
func fetchTranscript(ctx context.Context, src Source, meetingID string, w io.Writer) string {
	segments, err := src.Transcript(ctx, meetingID)
	if err != nil {
		fmt.Fprintf(w, "warning: fetching transcript for %s failed: %v\n", meetingID, err)
	}
	return transcript.Format(segments)
}
