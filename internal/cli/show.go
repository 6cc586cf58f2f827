// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/report"
)

// ValidFormats defines the allowed output formats for show.
var ValidFormats = []string{"text", "table"}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var graph GraphFlags
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the vertex detail table and the edge list",
		Example: `  graphz show --vertex 1=depot --vertex 2=hub --edge 1:2:2.5
  graphz show --edge a:b:1 --edge b:c:4 --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats))
			}
			g, err := graph.Build(rootOpts.graphOptions()...)
			if err != nil {
				return WrapExitError(ExitCommandError, "build graph", err)
			}
			return runShow(cmd.OutOrStdout(), g, format)
		},
	}
	graph.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|table)")

	return cmd
}

func runShow(w io.Writer, g *core.Graph[string, string], format string) error {
	if format == "table" {
		_, err := fmt.Fprintf(w, "%s\n%s\n", report.DetailsTable(g), report.EdgesTable(g))
		return err
	}
	if err := report.WriteDetails(w, g); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return report.WriteEdges(w, g)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
