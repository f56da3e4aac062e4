package impact

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/cmd/cli"
	"github.com/spf13/cobra"
)

type impactOptions struct {
	root   string
	asJSON bool
}

// Cmd represents the impact command.
var Cmd = NewCommand()

// NewCommand returns a new impact command instance.
func NewCommand() *cobra.Command {
	opts := &impactOptions{}

	cmd := &cobra.Command{
		Use:   "impact <file>",
		Short: "Show what breaks when a file changes",
		Long: `Analyze the project and report the blast radius of changing one file:
its direct dependents, transitive dependents, affected test files, and a
weighted impact score.

Examples:
  depscope impact src/auth/session.ts
  depscope impact --json internal/db/pool.go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Project root to analyze")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")

	return cmd
}

func runImpact(cmd *cobra.Command, opts *impactOptions, target string) error {
	app, err := cli.NewApp(opts.root, cli.NewLogger(cli.Verbose(cmd)))
	if err != nil {
		return err
	}

	if _, err := app.Analyzer.AnalyzeProject(cmd.Context(), app.Root); err != nil {
		return fmt.Errorf("failed to analyze project: %w", err)
	}

	result, err := app.Analyzer.GetImpactAnalysis(target)
	if err != nil {
		return err
	}

	var output string
	if opts.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		output = string(data)
	} else {
		output = renderImpact(result)
	}

	return cli.Emit(cmd, output, "")
}

func renderImpact(result *analyzer.ImpactAnalysisResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Impact of changing %s\n", result.TargetFile))
	sb.WriteString(fmt.Sprintf("Impact score: %.1f\n", result.ImpactScore))

	writeSection := func(title string, files []string) {
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", title, len(files)))
		if len(files) == 0 {
			sb.WriteString("   (none)\n")
			return
		}
		for _, file := range files {
			sb.WriteString(fmt.Sprintf("   %s\n", file))
		}
	}

	writeSection("Directly affected", result.DirectlyAffected)
	writeSection("Transitively affected", result.TransitivelyAffected)
	writeSection("Affected tests", result.AffectedTests)
	return strings.TrimRight(sb.String(), "\n")
}
