// SPDX-License-Identifier: MIT
// File: view.go
// Role: Read-only tabular views for presenters (detail rows) and cloning.
// Determinism:
//   - Rows follow vertex insertion order; adjacency follows edge insertion order.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Detail is one row of the detailed vertex table: ID, value and adjacency.
type Detail[K comparable, V any] struct {
	ID        K
	Value     V
	Neighbors []Neighbor[K]
}

// Details returns one row per vertex in insertion order.
// Rows are copies; mutating them does not affect the graph.
//
// Complexity: O(V + E).
func (g *Graph[K, V]) Details() []Detail[K, V] {
	rows := make([]Detail[K, V], 0, g.vertices.Len())
	var v *Vertex[K, V]
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		v = pair.Value
		rows = append(rows, Detail[K, V]{ID: v.id, Value: v.value, Neighbors: v.Neighbors()})
	}

	return rows
}

// Clone returns a deep copy of the graph: vertices, adjacency and edge
// catalog in the same order, sharing the logger and verbosity.
// Values are copied by assignment.
//
// Complexity: O(V + E).
func (g *Graph[K, V]) Clone() *Graph[K, V] {
	clone := &Graph[K, V]{
		vertices: orderedmap.New[K, *Vertex[K, V]](),
		edges:    orderedmap.New[pairKey[K], *Edge[K]](),
		logger:   g.logger,
		verbose:  g.verbose,
	}
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		clone.vertices.Set(pair.Key, pair.Value.clone())
	}
	var e *Edge[K]
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		e = pair.Value
		clone.edges.Set(pair.Key, &Edge[K]{A: e.A, B: e.B, Cost: e.Cost})
	}

	return clone
}
