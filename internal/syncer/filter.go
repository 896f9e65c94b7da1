// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syncer

import (
	"strings"
	"time"

	"github.com/pdiddy/granola-sync/pkg/types"
)

const dateFmt = "2006-01-02"

// FilterByDate returns the meetings created on the target calendar date,
// preserving input order. The test is a literal string-prefix comparison
// of created_at against the ISO date, not a timezone-aware one: a meeting
// stamped near midnight in an offset timezone can land on the neighboring
// day. This mirrors the upstream behavior and is left as is.
func FilterByDate(meetings []types.Meeting, target time.Time) []types.Meeting {
	prefix := target.Format(dateFmt)
	var selected []types.Meeting
	for _, m := range meetings {
		if strings.HasPrefix(m.CreatedAt, prefix) {
			selected = append(selected, m)
		}
	}
	return selected
}
