package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitDiffers      = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "ecmerge",
	Short: "Merge and compare .editorconfig files",
	Long: "ecmerge merges two .editorconfig files section by section, resolving conflicting keys\n" +
		"interactively or by policy, and prints side-by-side comparisons.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ecmerge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ecmerge version %s\n", version)
	},
}

// logf prints a diagnostic line to stderr when --verbose is set.
func logf(cmd *cobra.Command, format string, args ...interface{}) {
	if !flagVerbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// fail reports a runtime error and sets the exit code.
func fail(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = ExitRuntimeError
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print progress to stderr")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
