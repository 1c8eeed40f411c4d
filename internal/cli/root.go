// Package cli provides the command-line entry points for the tracesift tools.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracesift/tracesift/internal/cli/commands"
)

// Exit codes shared by both tools.
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitError = 2
)

// ExecuteFilter runs tracefilter with os.Args and returns the exit code.
func ExecuteFilter() int {
	return execute(commands.NewFilterCommand(), nil, os.Stdout, os.Stderr)
}

// ExecuteSyncStat runs syncstat with os.Args and returns the exit code.
func ExecuteSyncStat() int {
	return execute(commands.NewSyncStatCommand(), nil, os.Stdout, os.Stderr)
}

// execute runs cmd and maps its error to an exit code. A nil args slice
// makes cobra read os.Args.
func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args != nil {
		cmd.SetArgs(args)
	}

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	// Usage errors are a plain message on stdout
	var usageErr *commands.UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(stdout, usageErr.Message)
		return ExitUsage
	}

	// Print error to stderr (SilenceErrors prevents Cobra from doing this)
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
