// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphz/matrix"
	"github.com/katalvlaran/graphz/report"
)

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	var graph GraphFlags

	cmd := &cobra.Command{
		Use:     "matrix",
		Short:   "Print the least cost between every pair of vertices",
		Long:    "Print the all-pairs least-cost table (Floyd–Warshall, O(V³)); unreachable pairs show as inf.",
		Example: `  graphz matrix --edge 1:2:2 --edge 2:3:3 --vertex 4=island`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.Build(rootOpts.graphOptions()...)
			if err != nil {
				return WrapExitError(ExitCommandError, "build graph", err)
			}
			all, err := matrix.AllPairs(g)
			if err != nil {
				return WrapExitError(ExitCommandError, "all pairs", err)
			}
			return report.WriteDistances(cmd.OutOrStdout(), all)
		},
	}
	graph.register(cmd)

	return cmd
}
