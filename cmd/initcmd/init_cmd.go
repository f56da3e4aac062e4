package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/config"
	"github.com/spf13/cobra"
)

type initOptions struct {
	root  string
	force bool
}

// Cmd represents the init command.
var Cmd = NewCommand()

// NewCommand returns a new init command instance.
func NewCommand() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default ` + config.FileName + ` to the project root.

The generated file documents the analyzer defaults: which files are
included, which directories are skipped, path alias mappings, and cache
and concurrency settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	path := filepath.Join(opts.root, config.FileName)

	err := config.Write(path, analyzer.DefaultConfig())
	if errors.Is(err, fs.ErrExist) && opts.force {
		err = config.Overwrite(path, analyzer.DefaultConfig())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
