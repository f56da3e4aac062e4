package graph

import (
	"fmt"

	"github.com/depscope/depscope/cmd/cli"
	"github.com/depscope/depscope/cmd/graph/formatters"
	"github.com/depscope/depscope/cycles"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	root       string
	format     string
	outputFile string
	label      string
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a dependency graph for project files",
		Long: `Analyze the project and render its file-level dependency graph.

Examples:
  depscope graph                       # DOT graph of the current directory
  depscope graph -f mermaid            # Mermaid flowchart
  depscope graph -f json -o graph.json # JSON report written to a file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Project root to analyze")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatters.OutputFormatDOT.String(),
		fmt.Sprintf("Output format (%s, %s, %s)", formatters.OutputFormatDOT, formatters.OutputFormatJSON, formatters.OutputFormatMermaid))
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Title for the generated graph")

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions) error {
	formatter, err := formatters.NewFormatter(opts.format)
	if err != nil {
		return err
	}

	app, err := cli.NewApp(opts.root, cli.NewLogger(cli.Verbose(cmd)))
	if err != nil {
		return err
	}

	project, err := app.Analyzer.AnalyzeProject(cmd.Context(), app.Root)
	if err != nil {
		return fmt.Errorf("failed to analyze project: %w", err)
	}

	detected, err := app.Analyzer.DetectCycles(cycles.DefaultOptions())
	if err != nil {
		return err
	}

	label := opts.label
	if label == "" {
		fileCount := len(project.Files)
		if fileCount == 1 {
			label = fmt.Sprintf("%s • %d file", app.Root, fileCount)
		} else {
			label = fmt.Sprintf("%s • %d files", app.Root, fileCount)
		}
	}

	output, err := formatter.Format(formatters.Report{
		Snapshot: app.Analyzer.GraphSnapshot(),
		Cycles:   detected,
		Label:    label,
	})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	return cli.Emit(cmd, output, opts.outputFile)
}
