// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCost/Edges/EdgeCount.
// Determinism:
//   - Edges() returns the catalog in insertion order; a cost update keeps position.
// Invariants:
//   - Catalog entry and both adjacency entries are updated together, inside
//     link/unlink/setCost only.

package core

import "github.com/pkg/errors"

// AddEdge connects id1 and id2 with cost, or replaces the cost when they are
// already connected (in either orientation).
//
// Steps:
//  1. Validate cost (ErrBadCost) and reject self-loops (ErrLoopNotAllowed).
//  2. Both endpoints must exist (ErrVertexNotFound).
//  3. Existing edge ⇒ setCost updates catalog + both adjacency entries.
//  4. Otherwise link appends a catalog entry and two adjacency entries.
//
// Complexity: O(d1 + d2) for the adjacency scans on update, O(1) amortized on insert.
func (g *Graph[K, V]) AddEdge(id1, id2 K, cost float64) error {
	if err := validateCost(cost); err != nil {
		return g.reject(errors.Wrapf(err, "add edge %v-%v", id1, id2))
	}
	if id1 == id2 {
		return g.reject(errors.Wrapf(ErrLoopNotAllowed, "add edge %v-%v", id1, id2))
	}
	if err := g.requireVertices("add edge", id1, id2); err != nil {
		return g.reject(err)
	}

	if e, _, ok := g.lookupEdge(id1, id2); ok {
		prev := e.Cost
		g.setCost(e, cost)
		g.report("core: edge %v-%v cost %g -> %g", id1, id2, prev, cost)
		return nil
	}

	g.link(id1, id2, cost)
	g.report("core: edge %v-%v added (cost %g)", id1, id2, cost)

	return nil
}

// EdgeCost returns the cost of the edge between id1 and id2 in either orientation.
//
// Errors: ErrVertexNotFound when an endpoint is missing, ErrEdgeNotFound when
// the pair is not connected.
func (g *Graph[K, V]) EdgeCost(id1, id2 K) (float64, error) {
	if err := g.requireVertices("edge cost", id1, id2); err != nil {
		return 0, err
	}
	e, _, ok := g.lookupEdge(id1, id2)
	if !ok {
		return 0, errors.Wrapf(ErrEdgeNotFound, "edge %v-%v", id1, id2)
	}

	return e.Cost, nil
}

// HasEdge reports whether id1 and id2 are connected.
func (g *Graph[K, V]) HasEdge(id1, id2 K) bool {
	_, _, ok := g.lookupEdge(id1, id2)
	return ok
}

// RemoveEdge disconnects id1 and id2.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph[K, V]) RemoveEdge(id1, id2 K) error {
	if err := g.requireVertices("remove edge", id1, id2); err != nil {
		return g.reject(err)
	}
	if !g.unlink(id1, id2) {
		return g.reject(errors.Wrapf(ErrEdgeNotFound, "remove edge %v-%v", id1, id2))
	}
	g.report("core: edge %v-%v removed", id1, id2)

	return nil
}

// Edges returns copies of the catalog entries in insertion order.
func (g *Graph[K, V]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edges.Len())
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, *pair.Value)
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph[K, V]) EdgeCount() int { return g.edges.Len() }

// requireVertices returns ErrVertexNotFound naming the first missing id.
func (g *Graph[K, V]) requireVertices(op string, ids ...K) error {
	for _, id := range ids {
		if _, ok := g.vertices.Get(id); !ok {
			return errors.Wrapf(ErrVertexNotFound, "%s: %v", op, id)
		}
	}

	return nil
}
