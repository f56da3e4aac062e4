package stats

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/cmd/cli"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	root   string
	asJSON bool
}

// Cmd represents the stats command.
var Cmd = NewCommand()

// NewCommand returns a new stats command instance.
func NewCommand() *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the project's dependency graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Project root to analyze")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, opts *statsOptions) error {
	app, err := cli.NewApp(opts.root, cli.NewLogger(cli.Verbose(cmd)))
	if err != nil {
		return err
	}

	if _, err := app.Analyzer.AnalyzeProject(cmd.Context(), app.Root); err != nil {
		return fmt.Errorf("failed to analyze project: %w", err)
	}

	summary := app.Analyzer.GetStats()

	var output string
	if opts.asJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		output = string(data)
	} else {
		output = renderStats(app.Root, summary)
	}

	return cli.Emit(cmd, output, "")
}

func renderStats(root string, s analyzer.DependencyStats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dependency statistics for %s\n\n", root))
	sb.WriteString(fmt.Sprintf("   Files:                  %d\n", s.TotalFiles))
	sb.WriteString(fmt.Sprintf("   Dependencies:           %d\n", s.TotalDependencies))
	sb.WriteString(fmt.Sprintf("   Average per file:       %.2f\n", s.AverageDependenciesPerFile))
	sb.WriteString(fmt.Sprintf("   Most in a single file:  %d\n", s.MaxDependenciesInFile))
	sb.WriteString(fmt.Sprintf("   Circular dependencies:  %d\n", s.CircularDependencies))
	sb.WriteString(fmt.Sprintf("   Orphaned files:         %d", s.OrphanedFiles))
	return sb.String()
}
