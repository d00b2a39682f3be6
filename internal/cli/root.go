// Package cli implements the sparsemat command tree: thin cobra shells
// around the sparse package. Results go to stdout, logs go to stderr, and
// every error carries the exit code main should finish with.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions carries the global flags every subcommand sees.
type RootOptions struct {
	// Verbose switches logging from LevelInfo to LevelDebug.
	Verbose bool
	// ConfigPath optionally points at a YAML config file.
	ConfigPath string
	// Config is resolved from ConfigPath before any RunE executes.
	Config *Config
}

// NewRootCommand assembles the sparsemat command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sparsemat",
		Short: "sparse integer matrix calculator",
		Long: `sparsemat loads matrices in the "rows=/cols=/(r, c, v)" text format,
runs integer algebra on them and prints the result in the same format.

Results go to stdout and logs to stderr; --save additionally persists the
result under a generated name in the output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.Verbose)
			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading config", err)
			}
			opts.Config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewMulCommand(opts))
	cmd.AddCommand(NewScaleCommand(opts))

	return cmd
}

// setupLogging installs the process-wide text handler on stderr.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
