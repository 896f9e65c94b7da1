// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package granola is the HTTP client for the Granola notes service: meeting
// listings, AI panels, and transcripts.
package granola

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/granola-sync/internal/httputil"
	"github.com/pdiddy/granola-sync/pkg/types"
)

// apiBase is the Granola API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.granola.ai/v1"

// Client calls the Granola API. Fields are set by New; the configuration
// is read-only for the lifetime of the client.
type Client struct {
	Client *http.Client
	Config types.GranolaConfig
}

// New returns a client using cfg. The transport timeout comes from the
// configuration; there are no retries beyond the single round-trip.
func New(cfg types.GranolaConfig) *Client {
	return &Client{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
	}
}

// Meetings lists all meetings visible to the configured workspace.
func (c *Client) Meetings(ctx context.Context) ([]types.Meeting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/get-documents", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	var docs []meetingJSON
	if err := httputil.DoJSON(c.Client, req, &docs); err != nil {
		return nil, fmt.Errorf("Granola documents: %w", err)
	}

	meetings := make([]types.Meeting, len(docs))
	for i, d := range docs {
		meetings[i] = types.Meeting{ID: d.ID, Title: d.Title, CreatedAt: d.CreatedAt}
	}
	return meetings, nil
}

// Panels fetches the AI panels (Summary and friends) for one meeting.
func (c *Client) Panels(ctx context.Context, meetingID string) ([]types.Panel, error) {
	var raw []panelJSON
	if err := c.post(ctx, "/get-document-panels", meetingID, &raw); err != nil {
		return nil, fmt.Errorf("Granola panels for %s: %w", meetingID, err)
	}

	panels := make([]types.Panel, len(raw))
	for i, p := range raw {
		panels[i] = types.Panel{Title: p.Title, OriginalContent: p.OriginalContent}
	}
	return panels, nil
}

// Transcript fetches the full transcript for one meeting, in speaking order.
func (c *Client) Transcript(ctx context.Context, meetingID string) ([]types.TranscriptSegment, error) {
	var raw []segmentJSON
	if err := c.post(ctx, "/get-document-transcript", meetingID, &raw); err != nil {
		return nil, fmt.Errorf("Granola transcript for %s: %w", meetingID, err)
	}

	segments := make([]types.TranscriptSegment, len(raw))
	for i, s := range raw {
		segments[i] = types.TranscriptSegment{Text: s.Text, Source: s.Source}
	}
	return segments, nil
}

// post sends the {"document_id": ...} body shared by the per-meeting
// endpoints and decodes the JSON response into v.
func (c *Client) post(ctx context.Context, path, meetingID string, v any) error {
	body, err := json.Marshal(documentRequest{DocumentID: meetingID})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	return httputil.DoJSON(c.Client, req, v)
}

// setHeaders applies the Granola identification and auth headers. A
// credential starting with "Bearer " is a token and goes to Authorization;
// anything else is a raw session cookie.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Granola-Device-Id", c.Config.DeviceID)
	req.Header.Set("X-Granola-Workspace-Id", c.Config.WorkspaceID)

	version := c.Config.ClientVersion
	if version == "" {
		version = types.DefaultClientVersion
	}
	req.Header.Set("X-Client-Version", version)

	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	if cookie := c.Config.Cookie; cookie != "" {
		if strings.HasPrefix(cookie, "Bearer ") {
			req.Header.Set("Authorization", cookie)
		} else {
			req.Header.Set("Cookie", cookie)
		}
	}
}

type documentRequest struct {
	DocumentID string `json:"document_id"`
}

// Granola API JSON structures.
type meetingJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type panelJSON struct {
	Title           string `json:"title"`
	OriginalContent string `json:"original_content"`
}

type segmentJSON struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}
