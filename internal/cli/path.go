// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/dijkstra"
	"github.com/katalvlaran/graphz/report"
)

// PathOptions holds the flags of the path command.
type PathOptions struct {
	Graph         GraphFlags
	From          string
	To            string
	MaxIterations int
}

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PathOptions{}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the least-cost path between two vertices",
		Long: `Compute the least-cost path between --from and --to.

Exits with 1 when the target is unreachable or the iteration limit is hit,
and with 2 when the graph or the endpoints are invalid.`,
		Example: `  graphz path --edge 1:2:2 --edge 2:3:3 --edge 1:3:10 --edge 3:4:1 --from 1 --to 4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-iterations") {
				opts.MaxIterations = rootOpts.Config.MaxIterations
			}
			g, err := opts.Graph.Build(rootOpts.graphOptions()...)
			if err != nil {
				return WrapExitError(ExitCommandError, "build graph", err)
			}
			return runPath(cmd, rootOpts, opts, g)
		},
	}
	opts.Graph.register(cmd)
	cmd.Flags().StringVar(&opts.From, "from", "", "source vertex id")
	cmd.Flags().StringVar(&opts.To, "to", "", "target vertex id")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "fail after settling this many vertices (0 = unlimited)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runPath(cmd *cobra.Command, rootOpts *RootOptions, opts *PathOptions, g *core.Graph[string, string]) error {
	cost, hops, err := dijkstra.ShortestPath(g, opts.From, opts.To,
		dijkstra.WithMaxIterations(opts.MaxIterations),
		dijkstra.WithLogger(rootOpts.Logger),
	)
	switch {
	case err == nil:
	case errors.Is(err, dijkstra.ErrNoPath),
		errors.Is(err, dijkstra.ErrComputationLimit),
		errors.Is(err, dijkstra.ErrCostOverflow):
		return WrapExitError(ExitFailure, "no result", err)
	default:
		return WrapExitError(ExitCommandError, "shortest path", err)
	}

	return report.WritePath(cmd.OutOrStdout(), opts.From, cost, hops)
}
