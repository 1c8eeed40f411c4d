package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracesift/tracesift/pkg/filter"
	"github.com/tracesift/tracesift/pkg/parser"
)

// UsageNeedInput is printed when tracefilter is run without a file.
const UsageNeedInput = "need input"

// FilterOptions holds command-line options for tracefilter.
type FilterOptions struct {
	CommonOptions
}

// NewFilterCommand creates the tracefilter root command.
func NewFilterCommand() *cobra.Command {
	opts := &FilterOptions{}

	cmd := &cobra.Command{
		Use:   "tracefilter <input-file>",
		Short: "Print TS lines and CQM event 8/9 lines from a trace log",
		Long: `Print the lines of a decoded trace log that belong to the TS engine,
or to the CQM engine with event=8 or event=9. Lines are trimmed and printed
in input order.

A configuration file may replace the default rules:

  filter:
    rules:
      - tag: TS
      - tag: CQM
        markers: ["event=9", "event=8"]

A file name starting with '-' must follow "--":

  tracefilter -- -trace.log

Exit codes:
  0 - Success (including no matching lines)
  1 - No input file given
  2 - Input or configuration error`,
		Args:          requireInput,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	return cmd
}

// requireInput accepts one or more arguments; only the first is read.
func requireInput(_ *cobra.Command, args []string) error {
	if len(args) < 1 {
		return &UsageError{Message: UsageNeedInput}
	}
	return nil
}

func runFilter(cmd *cobra.Command, args []string, opts *FilterOptions) error {
	ctx := commandContext(cmd)
	path := args[0]

	cfg, logger, err := opts.setup(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	src, err := parser.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	stats, err := filter.Run(ctx, src, cmd.OutOrStdout(), cfg.Filter.Rules)
	if err != nil {
		return fmt.Errorf("filtering %s: %w", path, err)
	}

	logger.DebugContext(ctx, "filter complete",
		"source", path,
		"rules", len(cfg.Filter.Rules),
		"lines_read", stats.LinesRead,
		"lines_matched", stats.LinesMatched)
	return nil
}
