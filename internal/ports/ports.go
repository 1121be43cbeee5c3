package ports

import (
	"context"

	"linear-updates/internal/domain"
)

// UpdateSource defines methods to fetch project updates from Linear.
type UpdateSource interface {
	ListProjectUpdates(ctx context.Context) ([]domain.Update, error)
}

// Sink receives the final, ordered set of updates and presents them.
// In this project, the primary target is a markdown digest on stdout, but the
// interface is intentionally generic to support other targets.
type Sink interface {
	WriteDigest(ctx context.Context, updates []domain.Update) error
}
