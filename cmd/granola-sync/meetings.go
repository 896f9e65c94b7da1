// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/granola-sync/internal/blocks"
	"github.com/pdiddy/granola-sync/internal/granola"
	"github.com/pdiddy/granola-sync/internal/syncer"
	"github.com/pdiddy/granola-sync/pkg/types"
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "List the meetings that a sync of the target date would select",
	Long: `Meetings fetches the meeting list from Granola and prints the ones
created on the target date (yesterday by default), in the order a sync
would process them. Nothing is written to Craft.`,
	RunE: runMeetings,
}

func runMeetings(cmd *cobra.Command, args []string) error {
	target, err := targetDate(cmd)
	if err != nil {
		return err
	}

	gcfg, err := loadGranolaConfig()
	if err != nil {
		return err
	}
	src := granola.New(gcfg)

	meetings, err := src.Meetings(context.Background())
	if err != nil {
		return err
	}
	selected := syncer.FilterByDate(meetings, target)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatMeetingsOutput(selected, jsonOutput)
}

func formatMeetingsOutput(meetings []types.Meeting, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meetings)
	}

	if len(meetings) == 0 {
		fmt.Println("No meetings found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-24s  %s\n", "#", "Title", "Created", "ID")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, m := range meetings {
		title := m.Title
		if title == "" {
			title = blocks.DefaultTitle
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-24s  %s\n", i+1, title, m.CreatedAt, m.ID)
	}

	fmt.Fprintf(os.Stdout, "\n%d meeting(s)\n", len(meetings))
	return nil
}

func init() {
	meetingsCmd.Flags().String("date", "", "target date (YYYY-MM-DD, default: yesterday)")
	meetingsCmd.Flags().Bool("json", false, "output meetings as JSON")

	rootCmd.AddCommand(meetingsCmd)
}
