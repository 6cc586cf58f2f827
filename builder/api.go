// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// api.go: the BuildGraph orchestrator and the shared vertex/edge helpers
// used by every constructor.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

// Constructor adds one topology to g. Constructors validate parameters before
// touching g and return sentinel errors; they never panic.
type Constructor func(g *core.Graph[string, int], cfg builderConfig) error

// BuildGraph creates an empty store with gopts, resolves bopts and applies
// cons in order. The first constructor error is returned wrapped with its
// position; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, int], error) {
	g, err := core.NewGraph[string, int](nil, gopts...)
	if err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrapf(err, "BuildGraph: constructor %d", i)
		}
	}

	return g, nil
}

// ensureVertex adds id with value idx unless it is already present.
func ensureVertex(g *core.Graph[string, int], id string, idx int) error {
	if g.HasVertex(id) {
		return nil
	}
	return g.AddVertex(core.NewVertex(id, idx))
}

// addVertices ensures vertices cfg.idFn(0..n-1) and returns their IDs.
func addVertices(method string, g *core.Graph[string, int], cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureVertex(g, ids[i], i); err != nil {
			return nil, errors.Wrapf(err, "%s: vertex %s", method, ids[i])
		}
	}
	return ids, nil
}

// connect adds (or re-costs) the edge u–v with the next drawn cost.
func connect(method string, g *core.Graph[string, int], cfg builderConfig, u, v string) error {
	c := cfg.cost()
	if err := g.AddEdge(u, v, c); err != nil {
		return errors.Wrapf(err, "%s: edge %s-%s (cost %g)", method, u, v, c)
	}
	return nil
}
