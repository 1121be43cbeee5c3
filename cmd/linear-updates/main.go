package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"linear-updates/internal/app"
	"linear-updates/internal/config"
)

const version = "0.2.0"

var (
	inProgressOnly bool
	includeUpdated bool
	boldHeaders    bool
	recentOnly     bool
	recentDays     int
	pretty         bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "linear-updates",
	Short: "Print a digest of the latest Linear project updates",
	Long: `linear-updates fetches project updates from the Linear GraphQL API,
keeps the latest update per project, and prints them as a markdown digest
sorted by project priority.

The API key is read from LINEAR_API_KEY, or from
<user config dir>/linear-project-updates/config as a fallback.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.SetVersionTemplate("linear-updates {{.Version}}\n")
	// Registered up front so the version flag gets the -v shorthand.
	rootCmd.Flags().BoolP("version", "v", false, "Print the version and exit")

	rootCmd.Flags().BoolVarP(&inProgressOnly, "in-progress-only", "p", false,
		"Only show updates from projects that are in progress or paused")
	rootCmd.Flags().BoolVarP(&includeUpdated, "include-updated", "u", false,
		"Include last updated timestamp in project headers")
	rootCmd.Flags().BoolVarP(&boldHeaders, "bold-headers", "b", false,
		"Use bold markdown headers instead of ## headers")
	rootCmd.Flags().BoolVarP(&recentOnly, "recent", "r", false,
		"Only show updates from the recency window")
	rootCmd.Flags().IntVar(&recentDays, "days", 14,
		"Recency window in days, used with --recent")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false,
		"Render the digest for the terminal instead of plain markdown")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false,
		"Enable verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	// Logger. The digest owns stdout, so all diagnostics go to stderr.
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load(logger)
	if err != nil {
		return err
	}

	// App
	application := app.New(logger, cfg, app.Options{
		InProgressOnly: inProgressOnly,
		RecentOnly:     recentOnly,
		RecentDays:     recentDays,
		IncludeUpdated: includeUpdated,
		BoldHeaders:    boldHeaders,
		Pretty:         pretty,
	})

	// Context with signal handling around the single run.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.RunOnce(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
