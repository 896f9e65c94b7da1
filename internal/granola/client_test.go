// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package granola

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/granola-sync/pkg/types"
)

func testConfig() types.GranolaConfig {
	return types.GranolaConfig{
		HTTPConfig:    types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "granola-sync/test"},
		Cookie:        "session=abc123",
		DeviceID:      "device-1",
		WorkspaceID:   "workspace-1",
		ClientVersion: "6.462.1",
	}
}

func swapBase(t *testing.T, url string) {
	t.Helper()
	old := apiBase
	apiBase = url
	t.Cleanup(func() { apiBase = old })
}

const sampleDocumentsJSON = `[
  {"id": "doc-1", "title": "Weekly Standup", "created_at": "2026-03-14T09:30:00Z"},
  {"id": "doc-2", "title": "", "created_at": "2026-03-13T17:05:00Z"}
]`

func TestMeetings(t *testing.T) {
	var gotPath string
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, sampleDocumentsJSON)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	c := New(testConfig())
	c.Client = ts.Client()

	meetings, err := c.Meetings(context.Background())
	if err != nil {
		t.Fatalf("Meetings: %v", err)
	}
	if gotPath != "/get-documents" {
		t.Errorf("path = %q, want /get-documents", gotPath)
	}
	if len(meetings) != 2 {
		t.Fatalf("len(meetings) = %d, want 2", len(meetings))
	}
	if meetings[0].ID != "doc-1" || meetings[0].Title != "Weekly Standup" {
		t.Errorf("meetings[0] = %+v", meetings[0])
	}
	if meetings[0].CreatedAt != "2026-03-14T09:30:00Z" {
		t.Errorf("CreatedAt = %q, want raw timestamp string", meetings[0].CreatedAt)
	}
	// Empty titles pass through; the placeholder belongs to the block builder.
	if meetings[1].Title != "" {
		t.Errorf("meetings[1].Title = %q, want empty", meetings[1].Title)
	}

	if got := gotHeaders.Get("X-Granola-Device-Id"); got != "device-1" {
		t.Errorf("X-Granola-Device-Id = %q", got)
	}
	if got := gotHeaders.Get("X-Granola-Workspace-Id"); got != "workspace-1" {
		t.Errorf("X-Granola-Workspace-Id = %q", got)
	}
	if got := gotHeaders.Get("X-Client-Version"); got != "6.462.1" {
		t.Errorf("X-Client-Version = %q", got)
	}
	if got := gotHeaders.Get("Cookie"); got != "session=abc123" {
		t.Errorf("Cookie = %q", got)
	}
	if got := gotHeaders.Get("Authorization"); got != "" {
		t.Errorf("Authorization = %q, want unset for cookie credential", got)
	}
}

func TestBearerCredentialUsesAuthorization(t *testing.T) {
	var gotHeaders http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	cfg := testConfig()
	cfg.Cookie = "Bearer tok-xyz"
	c := New(cfg)
	c.Client = ts.Client()

	if _, err := c.Meetings(context.Background()); err != nil {
		t.Fatalf("Meetings: %v", err)
	}
	if got := gotHeaders.Get("Authorization"); got != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q", got)
	}
	if got := gotHeaders.Get("Cookie"); got != "" {
		t.Errorf("Cookie = %q, want unset for bearer credential", got)
	}
}

func TestClientVersionDefault(t *testing.T) {
	var gotVersion string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("X-Client-Version")
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	cfg := testConfig()
	cfg.ClientVersion = ""
	c := New(cfg)
	c.Client = ts.Client()

	if _, err := c.Meetings(context.Background()); err != nil {
		t.Fatalf("Meetings: %v", err)
	}
	if gotVersion != types.DefaultClientVersion {
		t.Errorf("X-Client-Version = %q, want default %q", gotVersion, types.DefaultClientVersion)
	}
}

func TestPanels(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `[
			{"title": "Summary", "original_content": "<p>notes</p>"},
			{"title": "Action Items", "original_content": "<ul><li>do it</li></ul>"}
		]`)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	c := New(testConfig())
	c.Client = ts.Client()

	panels, err := c.Panels(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Panels: %v", err)
	}
	if gotPath != "/get-document-panels" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["document_id"] != "doc-1" {
		t.Errorf("request body = %v, want document_id doc-1", gotBody)
	}
	if len(panels) != 2 {
		t.Fatalf("len(panels) = %d, want 2", len(panels))
	}
	if panels[0].Title != "Summary" || panels[0].OriginalContent != "<p>notes</p>" {
		t.Errorf("panels[0] = %+v", panels[0])
	}
}

func TestTranscript(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, `[
			{"text": "hello", "source": "microphone"},
			{"text": "hi there", "source": "system"}
		]`)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	c := New(testConfig())
	c.Client = ts.Client()

	segments, err := c.Transcript(context.Background(), "doc-2")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if gotPath != "/get-document-transcript" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["document_id"] != "doc-2" {
		t.Errorf("request body = %v, want document_id doc-2", gotBody)
	}
	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2", len(segments))
	}
	if segments[0].Text != "hello" || segments[0].Source != "microphone" {
		t.Errorf("segments[0] = %+v", segments[0])
	}
}

func TestHTTPErrorsSurfaceStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()
			swapBase(t, ts.URL)

			c := New(testConfig())
			c.Client = ts.Client()

			if _, err := c.Meetings(context.Background()); err == nil {
				t.Error("Meetings: expected error")
			}
			if _, err := c.Panels(context.Background(), "doc-1"); err == nil {
				t.Error("Panels: expected error")
			} else if !strings.Contains(err.Error(), fmt.Sprintf("HTTP %d", tt.statusCode)) {
				t.Errorf("Panels error = %q, should contain status", err)
			}
			if _, err := c.Transcript(context.Background(), "doc-1"); err == nil {
				t.Error("Transcript: expected error")
			}
		})
	}
}

func TestEmptyResponses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()
	swapBase(t, ts.URL)

	c := New(testConfig())
	c.Client = ts.Client()

	meetings, err := c.Meetings(context.Background())
	if err != nil || len(meetings) != 0 {
		t.Errorf("Meetings = %v, %v; want empty, nil", meetings, err)
	}
	panels, err := c.Panels(context.Background(), "x")
	if err != nil || len(panels) != 0 {
		t.Errorf("Panels = %v, %v; want empty, nil", panels, err)
	}
	segments, err := c.Transcript(context.Background(), "x")
	if err != nil || len(segments) != 0 {
		t.Errorf("Transcript = %v, %v; want empty, nil", segments, err)
	}
}
