package digest

import (
	"strings"
	"time"

	"linear-updates/internal/domain"
)

// InProgressOrPaused reports whether an update's project is actively worked
// on or paused: state "started" regardless of status, or state "planned"
// with status name "Paused" or "Planned". Backlog and every other state are
// excluded.
func InProgressOrPaused(u domain.Update) bool {
	state := strings.ToLower(u.Project.State)
	status := strings.ToLower(u.Project.Status.Name)

	if state == "started" {
		return true
	}
	if state == "planned" {
		return status == "paused" || status == "planned"
	}
	return false
}

// UpdatedWithin reports whether the update's effective timestamp falls inside
// the last days days relative to now, boundary inclusive. Unlike the
// reduction this needs real date parsing; a missing or unparsable timestamp
// excludes the update instead of failing the run.
func UpdatedWithin(u domain.Update, now time.Time, days int) bool {
	ts := u.EffectiveTimestamp()
	if ts == "" {
		return false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return false
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	return !t.Before(cutoff)
}
