package cycles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/depscope/depscope/cmd/cli"
	cycledetect "github.com/depscope/depscope/cycles"
	"github.com/spf13/cobra"
)

type cyclesOptions struct {
	root            string
	maxLength       int
	reportAll       bool
	ignoreSelfLoops bool
	asJSON          bool
	failOnCycles    bool
}

// Cmd represents the cycles command.
var Cmd = NewCommand()

// NewCommand returns a new cycles command instance.
func NewCommand() *cobra.Command {
	opts := &cyclesOptions{}

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Detect circular dependencies between project files",
		Long: `Analyze the project and report circular dependencies.

Each cycle is reported with a severity based on its length: cycles of up
to 3 files are low, up to 6 medium, and longer ones high.

Examples:
  depscope cycles                 # one representative cycle per tangle
  depscope cycles --all           # every elementary cycle
  depscope cycles --fail          # exit non-zero when cycles exist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Project root to analyze")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", cycledetect.DefaultOptions().MaxCycleLength, "Longest cycle to search for")
	cmd.Flags().BoolVar(&opts.reportAll, "all", false, "Report every elementary cycle instead of one per tangle")
	cmd.Flags().BoolVar(&opts.ignoreSelfLoops, "ignore-self-loops", false, "Skip files that import themselves")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.failOnCycles, "fail", false, "Exit with an error when any cycle is found")

	return cmd
}

func runCycles(cmd *cobra.Command, opts *cyclesOptions) error {
	app, err := cli.NewApp(opts.root, cli.NewLogger(cli.Verbose(cmd)))
	if err != nil {
		return err
	}

	if _, err := app.Analyzer.AnalyzeProject(cmd.Context(), app.Root); err != nil {
		return fmt.Errorf("failed to analyze project: %w", err)
	}

	detected, err := app.Analyzer.DetectCycles(cycledetect.Options{
		MaxCycleLength:  opts.maxLength,
		ReportAllCycles: opts.reportAll,
		IgnoreSelfLoops: opts.ignoreSelfLoops,
	})
	if err != nil {
		return err
	}

	var output string
	if opts.asJSON {
		data, err := json.MarshalIndent(detected, "", "  ")
		if err != nil {
			return err
		}
		output = string(data)
	} else {
		output = renderCycles(detected)
	}

	if err := cli.Emit(cmd, output, ""); err != nil {
		return err
	}

	if opts.failOnCycles && len(detected) > 0 {
		return fmt.Errorf("found %d circular dependencies", len(detected))
	}
	return nil
}

func renderCycles(detected []cycledetect.Cycle) string {
	if len(detected) == 0 {
		return "No circular dependencies found."
	}

	var sb strings.Builder
	if len(detected) == 1 {
		sb.WriteString("Found 1 circular dependency:\n")
	} else {
		sb.WriteString(fmt.Sprintf("Found %d circular dependencies:\n", len(detected)))
	}
	for i, c := range detected {
		sb.WriteString(fmt.Sprintf("\n%d. [%s] %d files\n", i+1, c.Severity, c.Length))
		for _, node := range c.Nodes {
			sb.WriteString(fmt.Sprintf("   %s ->\n", node))
		}
		sb.WriteString(fmt.Sprintf("   %s\n", c.Nodes[0]))
	}
	return strings.TrimRight(sb.String(), "\n")
}
