package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Emit writes command output to stdout, or to outputFile when given, and
// honors the persistent clipboard flag.
func Emit(cmd *cobra.Command, output, outputFile string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputFile)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	copyToClipboard, _ := cmd.Flags().GetBool("clipboard")
	if copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
	}
	return nil
}

// Verbose reports whether the persistent verbose flag is set.
func Verbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
