// SPDX-License-Identifier: MIT

// Package cli implements the graphz command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphz/config"
	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/log"
)

// RootOptions holds global flags and the state resolved from them before
// any subcommand runs.
type RootOptions struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	Verbose    bool

	Config *config.Config
	Logger log.Logger
}

// NewRootCommand creates the root command for the graphz CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "graphz",
		Short: "graphz - weighted graph inspector",
		Long: `Build a small weighted undirected graph from flags, print its
vertex and edge tables, and query least-cost paths between vertices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file with GRAPHZ_* variables")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error|none)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log every graph mutation at info level")

	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))

	return cmd
}

// resolve loads the configuration, applies explicit flags on top and builds
// the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath, o.EnvFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "load config", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}

	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "create logger", err)
	}
	o.Config = cfg
	o.Logger = logger

	return nil
}

// graphOptions returns the store options implied by the resolved config.
func (o *RootOptions) graphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithLogger(o.Logger)}
	if o.Config.Verbose {
		opts = append(opts, core.WithVerbose())
	}
	return opts
}
