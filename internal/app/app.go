package app

import (
	"context"
	"log/slog"
	"os"

	"linear-updates/internal/adapter/linear"
	"linear-updates/internal/adapter/render"
	"linear-updates/internal/config"
	"linear-updates/internal/usecase"
)

// Options collect every presentation and filter toggle from the CLI.
type Options struct {
	InProgressOnly bool
	RecentOnly     bool
	RecentDays     int
	IncludeUpdated bool
	BoldHeaders    bool
	Pretty         bool
}

// App wires adapters and the digest use case.
type App struct {
	log  *slog.Logger
	uc   *usecase.DigestUseCase
	opts usecase.Options
}

func New(log *slog.Logger, cfg config.Config, opts Options) *App {
	source := linear.NewClient(cfg.Linear.BaseURL, cfg.Linear.APIKey, log)
	sink := render.NewWriter(os.Stdout, render.Options{
		IncludeUpdated: opts.IncludeUpdated,
		BoldHeaders:    opts.BoldHeaders,
		Pretty:         opts.Pretty,
	}, log)

	uc := &usecase.DigestUseCase{
		Log:    log,
		Source: source,
		Sink:   sink,
	}

	return &App{
		log: log,
		uc:  uc,
		opts: usecase.Options{
			InProgressOnly:   opts.InProgressOnly,
			RecentOnly:       opts.RecentOnly,
			RecentWindowDays: opts.RecentDays,
		},
	}
}

func (a *App) RunOnce(ctx context.Context) error {
	return a.uc.Run(ctx, a.opts)
}
