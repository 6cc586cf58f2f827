// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphz/core"
)

// ErrBadSpec indicates a malformed --vertex or --edge value.
var ErrBadSpec = errors.New("cli: malformed graph flag")

// GraphFlags describes a graph inline: --vertex id=value and --edge a:b:cost.
type GraphFlags struct {
	Vertices []string
	Edges    []string
}

func (f *GraphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Vertices, "vertex", nil, "vertex as id=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.Edges, "edge", nil, "undirected edge as a:b:cost (repeatable)")
}

type edgeSpec struct {
	a, b string
	cost float64
}

func parseVertex(s string) (id, value string, err error) {
	id, value, _ = strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "", errors.Wrapf(ErrBadSpec, "vertex %q: empty id", s)
	}
	return id, strings.TrimSpace(value), nil
}

func parseEdge(s string) (edgeSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return edgeSpec{}, errors.Wrapf(ErrBadSpec, "edge %q: want a:b:cost", s)
	}
	a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if a == "" || b == "" {
		return edgeSpec{}, errors.Wrapf(ErrBadSpec, "edge %q: empty endpoint", s)
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return edgeSpec{}, errors.Wrapf(ErrBadSpec, "edge %q: %v", s, err)
	}
	return edgeSpec{a: a, b: b, cost: cost}, nil
}

// Build creates the graph. Declared vertices come first in flag order; edge
// endpoints that were not declared are added with an empty value when first
// seen. Store errors (duplicate id, bad cost, self-loop) are returned as is.
func (f *GraphFlags) Build(opts ...core.GraphOption) (*core.Graph[string, string], error) {
	g, err := core.NewGraph[string, string](nil, opts...)
	if err != nil {
		return nil, err
	}
	for _, s := range f.Vertices {
		id, value, err := parseVertex(s)
		if err != nil {
			return nil, err
		}
		if err := g.AddVertex(core.NewVertex(id, value)); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Edges {
		e, err := parseEdge(s)
		if err != nil {
			return nil, err
		}
		for _, id := range []string{e.a, e.b} {
			if !g.HasVertex(id) {
				if err := g.AddVertex(core.NewVertex(id, "")); err != nil {
					return nil, err
				}
			}
		}
		if err := g.AddEdge(e.a, e.b, e.cost); err != nil {
			return nil, err
		}
	}

	return g, nil
}
