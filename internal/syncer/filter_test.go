// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syncer

import (
	"testing"
	"time"

	"github.com/pdiddy/granola-sync/pkg/types"
)

func TestFilterByDate(t *testing.T) {
	target := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	meetings := []types.Meeting{
		{ID: "a", CreatedAt: "2026-03-14T09:00:00Z"},
		{ID: "b", CreatedAt: "2026-03-13T23:59:59Z"},
		{ID: "c", CreatedAt: "2026-03-14T17:30:00+02:00"},
		{ID: "d", CreatedAt: "2026-03-15T00:00:01Z"},
		{ID: "e", CreatedAt: "2026-03-14"},
		{ID: "f", CreatedAt: ""},
	}

	got := FilterByDate(meetings, target)

	wantIDs := []string{"a", "c", "e"}
	if len(got) != len(wantIDs) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q (order must be preserved)", i, got[i].ID, id)
		}
	}
}

func TestFilterByDateNoMatches(t *testing.T) {
	target := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	meetings := []types.Meeting{
		{ID: "a", CreatedAt: "2025-12-31T23:59:59Z"},
		{ID: "b", CreatedAt: "garbage"},
	}
	if got := FilterByDate(meetings, target); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestFilterByDateEmptyInput(t *testing.T) {
	target := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := FilterByDate(nil, target); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
