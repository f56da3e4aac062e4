package cmd

import (
	"os"

	cyclescmd "github.com/depscope/depscope/cmd/cycles"
	"github.com/depscope/depscope/cmd/graph"
	"github.com/depscope/depscope/cmd/impact"
	"github.com/depscope/depscope/cmd/initcmd"
	"github.com/depscope/depscope/cmd/stats"
	"github.com/depscope/depscope/cmd/watch"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Analyze file-level dependency graphs in your codebase",
	Long: `Depscope builds a file-level dependency graph of your project by parsing
import statements, then answers questions about it: what depends on what,
which files are tangled in circular dependencies, and what breaks when a
file changes.

Use 'depscope --help' to see all available commands, or 'depscope <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(graph.Cmd)
	rootCmd.AddCommand(cyclescmd.Cmd)
	rootCmd.AddCommand(impact.Cmd)
	rootCmd.AddCommand(stats.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(initcmd.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	rootCmd.PersistentFlags().BoolP("clipboard", "b", false, "Automatically copy output to clipboard")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
