package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dshills/ecmerge/internal/compare"
	"github.com/dshills/ecmerge/internal/output"
)

var (
	flagOut      string
	flagExitCode bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <configA> <configB>",
	Short: "Compare two .editorconfig files",
	Long: "Compare two .editorconfig files. Prints the number of same, diff, onlyA and onlyB keys,\n" +
		"then one table per section. Values wider than --limit columns are truncated.",
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("limit") && flagLimit < 1 {
			return errors.New("--limit must be at least 1")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, b, err := readPair(cmd, args[0], args[1])
		if err != nil {
			fail(cmd, err)
			return nil
		}

		report := compare.NewReport(args[0], args[1], compare.CompareAll(a, b))

		opts := output.Options{
			Limit: cfg.Limit,
			Color: flagOut == "" && cfg.UseColor(isTerminal(cmd.OutOrStdout())),
		}
		if err := output.WriteReport(report, cfg.Format, flagOut, opts, cmd.OutOrStdout()); err != nil {
			fail(cmd, err)
			return nil
		}

		if flagExitCode && report.Totals.Differs() {
			exitCode = ExitDiffers
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().IntVar(&flagLimit, "limit", 0, "Truncate values wider than this many columns (default from config: 40)")
	compareCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	compareCmd.Flags().StringVar(&flagColor, "color", "", "Colour output (auto, always, never)")
	compareCmd.Flags().StringVar(&flagOut, "out", "", "Report file path (default: stdout)")
	compareCmd.Flags().BoolVar(&flagExitCode, "exit-code", false, "Exit with status 1 when the files differ")
}
