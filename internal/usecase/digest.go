package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"linear-updates/internal/digest"
	"linear-updates/internal/domain"
	"linear-updates/internal/ports"
)

// defaultRecentDays is the recency window applied when Options leaves it unset.
const defaultRecentDays = 14

// Options select which filters the digest applies.
type Options struct {
	InProgressOnly   bool // keep only in-progress or paused projects
	RecentOnly       bool // keep only updates inside the recency window
	RecentWindowDays int  // window for RecentOnly; defaults to 14 when <= 0
}

// DigestUseCase coordinates fetching from Linear and writing the digest.
type DigestUseCase struct {
	Log    *slog.Logger
	Source ports.UpdateSource
	Sink   ports.Sink
	Now    func() time.Time // test seam; time.Now when nil
}

// Run executes the pipeline once: fetch, reduce to the latest update per
// project, sort by priority, apply the optional filters, and hand the result
// to the sink. An empty final set still reaches the sink, which emits nothing.
func (uc *DigestUseCase) Run(ctx context.Context, opts Options) error {
	if uc.Source == nil || uc.Sink == nil {
		return errors.New("usecase not initialized: missing dependencies")
	}

	updates, err := uc.Source.ListProjectUpdates(ctx)
	if err != nil {
		return err
	}
	uc.Log.Debug("fetched project updates", slog.Int("count", len(updates)))

	latest := digest.ReduceLatest(updates)
	digest.SortByPriority(latest)
	uc.Log.Debug("reduced to latest per project", slog.Int("count", len(latest)))

	if opts.InProgressOnly {
		latest = keep(latest, digest.InProgressOrPaused)
		uc.Log.Debug("applied activity filter", slog.Int("count", len(latest)))
	}

	if opts.RecentOnly {
		days := opts.RecentWindowDays
		if days <= 0 {
			days = defaultRecentDays
		}
		now := time.Now()
		if uc.Now != nil {
			now = uc.Now()
		}
		latest = keep(latest, func(u domain.Update) bool {
			return digest.UpdatedWithin(u, now, days)
		})
		uc.Log.Debug("applied recency filter",
			slog.Int("count", len(latest)),
			slog.Int("days", days),
		)
	}

	return uc.Sink.WriteDigest(ctx, latest)
}

// keep filters in place, preserving order.
func keep(updates []domain.Update, pred func(domain.Update) bool) []domain.Update {
	out := updates[:0]
	for _, u := range updates {
		if pred(u) {
			out = append(out, u)
		}
	}
	return out
}
