// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood query (Adjacency) and the private helpers that keep the
//       edge catalog and both adjacency copies in step.
// Concurrency:
//   - None. Helpers assume the caller validated endpoints.

package core

import "github.com/pkg/errors"

// Adjacency returns a copy of id's (neighbor, cost) pairs in insertion order.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d).
func (g *Graph[K, V]) Adjacency(id K) ([]Neighbor[K], error) {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "adjacency %v", id)
	}

	return v.Neighbors(), nil
}

// lookupEdge finds the catalog entry for the unordered pair {a, b}.
func (g *Graph[K, V]) lookupEdge(a, b K) (*Edge[K], pairKey[K], bool) {
	key := pairKey[K]{a: a, b: b}
	if e, ok := g.edges.Get(key); ok {
		return e, key, true
	}
	key = pairKey[K]{a: b, b: a}
	if e, ok := g.edges.Get(key); ok {
		return e, key, true
	}

	return nil, key, false
}

// link appends a new edge to the catalog and to both adjacency lists.
// Both endpoints must exist and must not be connected yet.
func (g *Graph[K, V]) link(a, b K, cost float64) {
	va, _ := g.vertices.Get(a)
	vb, _ := g.vertices.Get(b)

	g.edges.Set(pairKey[K]{a: a, b: b}, &Edge[K]{A: a, B: b, Cost: cost})
	va.adjacency = append(va.adjacency, Neighbor[K]{ID: b, Cost: cost})
	vb.adjacency = append(vb.adjacency, Neighbor[K]{ID: a, Cost: cost})
}

// setCost rewrites the cost of e in the catalog and in both adjacency entries.
func (g *Graph[K, V]) setCost(e *Edge[K], cost float64) {
	va, _ := g.vertices.Get(e.A)
	vb, _ := g.vertices.Get(e.B)

	e.Cost = cost
	va.adjacency[va.neighborIndex(e.B)].Cost = cost
	vb.adjacency[vb.neighborIndex(e.A)].Cost = cost
}

// unlink removes the edge {a, b} from all three locations.
// It reports false when there is no such edge.
func (g *Graph[K, V]) unlink(a, b K) bool {
	e, key, ok := g.lookupEdge(a, b)
	if !ok {
		return false
	}
	va, _ := g.vertices.Get(e.A)
	vb, _ := g.vertices.Get(e.B)

	g.edges.Delete(key)
	va.adjacency = removeNeighbor(va.adjacency, e.B)
	vb.adjacency = removeNeighbor(vb.adjacency, e.A)

	return true
}

// removeNeighbor deletes id from adj keeping the order of the rest.
func removeNeighbor[K comparable](adj []Neighbor[K], id K) []Neighbor[K] {
	for i := range adj {
		if adj[i].ID == id {
			return append(adj[:i], adj[i+1:]...)
		}
	}

	return adj
}
