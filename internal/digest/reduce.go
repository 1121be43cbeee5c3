// Package digest holds the pure in-memory pipeline: latest-per-project
// reduction, the activity and recency filters, and the priority sort.
package digest

import "linear-updates/internal/domain"

// ReduceLatest keeps one update per project: the one with the greatest
// effective timestamp. Updates without a project ID are dropped.
//
// Timestamps are compared as raw strings, not parsed dates. That is valid
// only because the API emits every timestamp in one ISO-8601 UTC form
// (e.g. "2024-01-05T00:00:00.000Z"), which orders lexicographically; it is
// not a general date comparison. An earlier record is replaced only on a
// strictly greater timestamp, so on a tie the first-seen update wins.
//
// The result preserves the order in which projects were first encountered.
func ReduceLatest(updates []domain.Update) []domain.Update {
	index := make(map[string]int, len(updates))
	out := make([]domain.Update, 0, len(updates))

	for _, u := range updates {
		id := u.Project.ID
		if id == "" {
			continue
		}
		i, seen := index[id]
		if !seen {
			index[id] = len(out)
			out = append(out, u)
			continue
		}
		if u.EffectiveTimestamp() > out[i].EffectiveTimestamp() {
			out[i] = u
		}
	}

	return out
}
