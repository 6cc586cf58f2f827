// SPDX-License-Identifier: MIT
// File: text.go
// Role: Plain-text writers for vertex details, the edge catalog, paths and
//       all-pairs distances.
// Determinism:
//   - Rows follow the graph's insertion order, so output is reproducible.

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/dijkstra"
	"github.com/katalvlaran/graphz/matrix"
)

// FormatCost renders a cost without trailing zeros ("2", "2.5").
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// formatNeighbors renders an adjacency list as "2(2) 3(10)", or "-" when empty.
func formatNeighbors[K comparable](ns []core.Neighbor[K]) string {
	if len(ns) == 0 {
		return "-"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%v(%s)", n.ID, FormatCost(n.Cost))
	}

	return strings.Join(parts, " ")
}

// WriteDetails writes one row per vertex: ID, value and adjacency list.
func WriteDetails[K comparable, V any](w io.Writer, g *core.Graph[K, V]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVALUE\tNEIGHBORS")
	for _, d := range g.Details() {
		fmt.Fprintf(tw, "%v\t%v\t%s\n", d.ID, d.Value, formatNeighbors(d.Neighbors))
	}

	return errors.Wrap(tw.Flush(), "report: details")
}

// WriteEdges writes the edge catalog followed by a summary line.
func WriteEdges[K comparable, V any](w io.Writer, g *core.Graph[K, V]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "A\tB\tCOST")
	for _, e := range g.Edges() {
		fmt.Fprintf(tw, "%v\t%v\t%s\n", e.A, e.B, FormatCost(e.Cost))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "report: edges")
	}
	st := g.Stats()
	_, err := fmt.Fprintf(w, "%d vertices, %d edges, total cost %s, %d isolated\n",
		st.VertexCount, st.EdgeCount, FormatCost(st.TotalCost), st.Isolated)

	return errors.Wrap(err, "report: edges")
}

// WritePath writes a route "1 -> 2 -> 3 (cost 5)" followed by one line per
// hop in walk order. A zero-length path prints only the route line.
func WritePath[K comparable](w io.Writer, source K, cost float64, hops []dijkstra.Hop[K]) error {
	route := make([]string, len(hops)+1)
	route[0] = fmt.Sprint(source)
	for i, h := range hops {
		route[len(hops)-i] = fmt.Sprint(h.ID)
	}
	if _, err := fmt.Fprintf(w, "%s (cost %s)\n", strings.Join(route, " -> "), FormatCost(cost)); err != nil {
		return errors.Wrap(err, "report: path")
	}
	for _, h := range hops {
		if _, err := fmt.Fprintf(w, "  %v <- %v\n", h.ID, h.Predecessor); err != nil {
			return errors.Wrap(err, "report: path")
		}
	}

	return nil
}

// WriteDistances writes the all-pairs least-cost table, one row and one
// column per vertex in insertion order. Unreachable pairs print as "inf".
func WriteDistances[K comparable](w io.Writer, m *matrix.Adjacency[K]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, id := range m.IDs {
		fmt.Fprintf(tw, "\t%v", id)
	}
	fmt.Fprintln(tw)
	for i, id := range m.IDs {
		fmt.Fprintf(tw, "%v", id)
		for j := range m.IDs {
			c, err := m.Mat.At(i, j)
			if err != nil {
				return errors.Wrap(err, "report: distances")
			}
			if math.IsInf(c, 1) {
				fmt.Fprint(tw, "\tinf")
				continue
			}
			fmt.Fprintf(tw, "\t%s", FormatCost(c))
		}
		fmt.Fprintln(tw)
	}

	return errors.Wrap(tw.Flush(), "report: distances")
}
