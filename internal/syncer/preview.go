// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syncer

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/granola-sync/pkg/types"
)

// PreviewSink renders each submission as a YAML document on w instead of
// sending it anywhere. It backs `sync --dry-run`.
type PreviewSink struct {
	W io.Writer
}

// previewSubmission is the YAML shape of one would-be submission.
type previewSubmission struct {
	Date   string        `yaml:"date"`
	Blocks []types.Block `yaml:"blocks"`
}

// AppendBlocks writes the submission as a `---`-separated YAML document.
// Empty submissions are skipped, matching the real sink's no-op.
func (s *PreviewSink) AppendBlocks(_ context.Context, blocks []types.Block, targetDateISO string) error {
	if len(blocks) == 0 {
		return nil
	}
	data, err := yaml.Marshal(previewSubmission{Date: targetDateISO, Blocks: blocks})
	if err != nil {
		return fmt.Errorf("marshaling preview: %w", err)
	}
	_, err = fmt.Fprintf(s.W, "---\n%s", data)
	return err
}
