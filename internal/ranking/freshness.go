package ranking

import (
	"time"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// LastUpdated returns the newest modification time in the set, using the creation
// time for rows that were never modified and the match date for rows carrying
// neither. It returns nil for an empty set; a non-empty set is nil only if no
// match in it has any time at all.
func LastUpdated(matches []model.MatchRecord) *time.Time {
	var latest time.Time
	for _, m := range matches {
		ts := m.UpdatedAt
		if ts.IsZero() {
			ts = m.CreatedAt
		}
		if ts.IsZero() {
			ts = m.PlayedAt
		}
		if ts.After(latest) {
			latest = ts
		}
	}
	if latest.IsZero() {
		return nil
	}
	return &latest
}
