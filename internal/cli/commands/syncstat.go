package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracesift/tracesift/pkg/output"
	"github.com/tracesift/tracesift/pkg/parser"
	"github.com/tracesift/tracesift/pkg/syncpoint"
)

// SyncStatOptions holds command-line options for syncstat.
type SyncStatOptions struct {
	CommonOptions
	Format string
}

// NewSyncStatCommand creates the syncstat root command.
func NewSyncStatCommand() *cobra.Command {
	opts := &SyncStatOptions{}

	cmd := &cobra.Command{
		Use:   "syncstat",
		Short: "Summarize host/device sync points from " + syncpoint.DefaultFileName,
		Long: `Read ` + syncpoint.DefaultFileName + ` from the current directory and report the
minimum, maximum and span of the host timestamps (ns) and device cycle
counters. Each record is "syncIndex hostTime deviceCycle"; lines with any
other number of fields are skipped.

Exit codes:
  0 - Success
  2 - Missing file, malformed number or configuration error`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncStat(cmd, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", output.FormatText, "Output format (text|json|table)")

	return cmd
}

func runSyncStat(cmd *cobra.Command, opts *SyncStatOptions) error {
	ctx := commandContext(cmd)

	cfg, logger, err := opts.setup(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Summary.Format = opts.Format
	}

	formatter, err := output.NewFormatter(cfg.Summary.Format, output.FormatOptions{Verbose: opts.Verbose})
	if err != nil {
		return err
	}

	src, err := parser.Open(syncpoint.DefaultFileName)
	if err != nil {
		return err
	}
	defer src.Close()

	sum, err := syncpoint.Summarize(ctx, src,
		syncpoint.WithRetainPoints(cfg.Summary.RetainPoints),
		syncpoint.WithLogger(logger))
	if err != nil {
		return err
	}

	report := output.NewReport(sum, syncpoint.DefaultFileName)
	if !report.HasData() {
		logger.InfoContext(ctx, "no sync point records found", "source", syncpoint.DefaultFileName)
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
