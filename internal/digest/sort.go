package digest

import (
	"slices"
	"strings"

	"linear-updates/internal/domain"
)

// PriorityScore maps Linear's priority field to a sort weight: 1 (urgent)
// scores highest, 4 (low) lowest among the set priorities. Zero, absent and
// unrecognized values all score 10.
func PriorityScore(p domain.Project) int {
	switch p.Priority {
	case 1:
		return 100
	case 2:
		return 75
	case 3:
		return 50
	case 4:
		return 25
	default:
		return 10
	}
}

// SortByPriority orders updates in place by priority score (highest first),
// then by project name, case-insensitively, so output is deterministic.
func SortByPriority(updates []domain.Update) {
	slices.SortStableFunc(updates, func(a, b domain.Update) int {
		if d := PriorityScore(b.Project) - PriorityScore(a.Project); d != 0 {
			return d
		}
		return strings.Compare(
			strings.ToLower(a.Project.Name),
			strings.ToLower(b.Project.Name),
		)
	})
}
