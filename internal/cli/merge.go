package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/ecmerge/internal/compare"
	"github.com/dshills/ecmerge/internal/config"
	"github.com/dshills/ecmerge/internal/merge"
)

var (
	flagOutput    string
	flagFirst2Win bool
)

// openPrompter builds the interactive conflict resolver. Tests replace it.
var openPrompter = func(out io.Writer) *merge.Prompter {
	return merge.NewPrompter(out)
}

var mergeCmd = &cobra.Command{
	Use:   "merge <configA> <configB>",
	Short: "Merge two .editorconfig files",
	Long: "Merge two .editorconfig files section by section. Keys with equal values are kept,\n" +
		"conflicting keys are resolved by prompt (default: configA) or by --first2win/--prefer,\n" +
		"and keys found in only one file are listed under a comment naming that file.",
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if flagPrefer != "" {
			side, err := merge.ParseSide(flagPrefer)
			if err != nil {
				return fmt.Errorf("--prefer: %w", err)
			}
			flagPrefer = side.String()
		}
		if flagFirst2Win && flagPrefer == "b" {
			return errors.New("--first2win and --prefer b are mutually exclusive")
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

		results := compare.CompareAll(a, b)

		resolver, done := buildResolver(cmd, cfg)
		data, err := merge.Merge(results, merge.Options{
			LabelA:   args[0],
			LabelB:   args[1],
			Resolver: resolver,
		})
		done()
		if err != nil {
			if errors.Is(err, merge.ErrAborted) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Merge aborted; %s not written\n", flagOutput)
				exitCode = ExitRuntimeError
				return nil
			}
			fail(cmd, err)
			return nil
		}

		if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
			fail(cmd, fmt.Errorf("writing %s: %w", flagOutput, err))
			return nil
		}
		logf(cmd, "wrote %s (%d sections)", flagOutput, len(results))
		return nil
	},
}

// buildResolver picks the conflict policy. The returned func releases any
// terminal state and must be called once merging is done.
func buildResolver(cmd *cobra.Command, cfg config.Config) (merge.Resolver, func()) {
	if flagFirst2Win {
		return merge.Prefer(merge.SideA), func() {}
	}
	if cfg.Prefer != "" {
		side, _ := merge.ParseSide(cfg.Prefer)
		return merge.Prefer(side), func() {}
	}
	if !stdinIsTerminal() {
		logf(cmd, "stdin is not a terminal; reading answers line by line")
	}
	p := openPrompter(cmd.OutOrStdout())
	return p, func() { p.Close() }
}

func init() {
	mergeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (required)")
	mergeCmd.Flags().BoolVar(&flagFirst2Win, "first2win", false, "Resolve every conflict with configA's value without prompting")
	mergeCmd.Flags().StringVar(&flagPrefer, "prefer", "", "Resolve every conflict with the given side's value (a or b)")
	_ = mergeCmd.MarkFlagRequired("output")
}
