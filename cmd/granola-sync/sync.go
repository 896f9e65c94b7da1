// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/granola-sync/internal/craft"
	"github.com/pdiddy/granola-sync/internal/granola"
	"github.com/pdiddy/granola-sync/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync one day's meetings into the Craft daily note",
	Long: `Sync fetches the meetings created on the target date (yesterday by
default), converts each meeting's Summary panel and transcript to markdown,
and appends a block group per meeting to the Craft daily note for that date.

With --dry-run the submissions are printed as YAML instead of being sent,
which needs no Craft credentials.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	target, err := targetDate(cmd)
	if err != nil {
		return err
	}

	gcfg, err := loadGranolaConfig()
	if err != nil {
		return err
	}
	src := granola.New(gcfg)

	var sink syncer.Sink
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		sink = &syncer.PreviewSink{W: os.Stdout}
	} else {
		ccfg, err := loadCraftConfig()
		if err != nil {
			return err
		}
		sink = craft.New(ccfg)
	}

	res := syncer.Run(context.Background(), src, sink, target, os.Stdout)
	if res.Failed > 0 {
		return fmt.Errorf("%d meeting(s) failed to sync", res.Failed)
	}
	return nil
}

// targetDate reads --date, defaulting to yesterday on the local clock.
func targetDate(cmd *cobra.Command) (time.Time, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	if dateStr == "" {
		return time.Now().AddDate(0, 0, -1), nil
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", dateStr)
	}
	return t, nil
}

func init() {
	syncCmd.Flags().String("date", "", "target date (YYYY-MM-DD, default: yesterday)")
	syncCmd.Flags().Bool("dry-run", false, "print submissions as YAML instead of sending them")

	rootCmd.AddCommand(syncCmd)
}
