// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package craft is the HTTP client for the Craft.do connect API. It appends
// block groups to the daily note for a given date.
package craft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/granola-sync/internal/httputil"
	"github.com/pdiddy/granola-sync/pkg/types"
)

// apiBase is the Craft connect root; the space-scoped endpoint hangs off
// it. Declared as a var so tests can substitute an httptest server.
var apiBase = "https://connect.craft.do/links"

// Client calls the Craft.do connect API for one space.
type Client struct {
	Client *http.Client
	Config types.CraftConfig
}

// New returns a client using cfg.
func New(cfg types.CraftConfig) *Client {
	return &Client{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// appendPayload is the wire format of the blocks endpoint: the blocks to
// insert and where to put them (end of the daily note for a date).
type appendPayload struct {
	Blocks   []types.Block `json:"blocks"`
	Position position      `json:"position"`
}

type position struct {
	Position string `json:"position"`
	Date     string `json:"date"`
}

// AppendBlocks appends blocks to the end of the daily note for
// targetDateISO (YYYY-MM-DD). An empty block slice is a no-op success.
// A non-2xx response is returned as an error carrying the response body.
func (c *Client) AppendBlocks(ctx context.Context, blocks []types.Block, targetDateISO string) error {
	if len(blocks) == 0 {
		return nil
	}

	payload := appendPayload{
		Blocks:   blocks,
		Position: position{Position: "end", Date: targetDateISO},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding blocks: %w", err)
	}

	url := fmt.Sprintf("%s/%s/api/v1/blocks", apiBase, c.Config.SpaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Config.Token)
	req.Header.Set("Content-Type", "application/json")
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	if err := httputil.DoJSON(c.Client, req, nil); err != nil {
		return fmt.Errorf("Craft blocks API: %w", err)
	}
	return nil
}
