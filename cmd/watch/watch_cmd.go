package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/depscope/depscope/cmd/cli"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	root string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch for file changes and keep the dependency graph current",
		Long: `Watch the project for file changes and incrementally re-analyze
changed files. Only the changed files are parsed again; the rest of the
graph is served from the analysis cache.

After each change the current graph size is printed, along with a
warning when circular dependencies appear.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Project root to watch")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	app, err := cli.NewApp(opts.root, cli.NewLogger(cli.Verbose(cmd)))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := app.Analyzer.AnalyzeProject(ctx, app.Root); err != nil {
		return fmt.Errorf("initial analysis failed: %w", err)
	}
	reportGraphState(cmd, app)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", app.Root)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndReanalyze(ctx, cmd, app)
}
