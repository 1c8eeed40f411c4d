// Package commands implements the tracefilter and syncstat commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tracesift/tracesift/internal/logging"
	"github.com/tracesift/tracesift/pkg/config"
)

// CommonOptions holds flags shared by both tools.
type CommonOptions struct {
	ConfigPath string
	Verbose    bool
}

func (o *CommonOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "Optional YAML or TOML configuration file")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug details to stderr")
}

// setup loads the configuration (defaults when no file is given) and builds
// the stderr logger.
func (o *CommonOptions) setup(ctx context.Context, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg := config.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := config.Load(ctx, o.ConfigPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if o.Verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: stderr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}

	return cfg, logger, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
