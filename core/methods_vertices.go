// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex accessors and vertex lifecycle on Graph.
// Determinism:
//   - VertexIDs() and Vertices() return insertion order.

package core

import "github.com/pkg/errors"

// ID returns the vertex identifier.
func (v *Vertex[K, V]) ID() K { return v.id }

// Value returns the payload.
func (v *Vertex[K, V]) Value() V { return v.value }

// SetValue replaces the payload. Values do not take part in any invariant.
func (v *Vertex[K, V]) SetValue(value V) { v.value = value }

// Neighbors returns a copy of the adjacency in insertion order.
func (v *Vertex[K, V]) Neighbors() []Neighbor[K] {
	out := make([]Neighbor[K], len(v.adjacency))
	copy(out, v.adjacency)

	return out
}

// Degree returns the number of incident edges.
func (v *Vertex[K, V]) Degree() int { return len(v.adjacency) }

// IsNil reports whether the receiver is nil; safe on typed-nil pointers.
func (v *Vertex[K, V]) IsNil() bool { return v == nil }

// clone returns a detached copy with its own adjacency slice.
func (v *Vertex[K, V]) clone() *Vertex[K, V] {
	return NewVertex(v.id, v.value, v.adjacency...)
}

// neighborIndex returns the adjacency position of id, or -1.
func (v *Vertex[K, V]) neighborIndex(id K) int {
	for i := range v.adjacency {
		if v.adjacency[i].ID == id {
			return i
		}
	}

	return -1
}

// AddVertex inserts a copy of v.
//
// Implementation:
//   - Stage 1: Reject nil and already-present IDs (ErrNilVertex, ErrDuplicateID).
//   - Stage 2: Validate every neighbor of v against the current graph before
//     touching any state, so a rejected call leaves the graph unchanged.
//   - Stage 3: Register the vertex with empty adjacency, then link each
//     neighbor through the same path AddEdge uses.
//
// Errors:
//   - ErrNilVertex, ErrDuplicateID.
//   - ErrBadCost, ErrLoopNotAllowed, ErrDuplicateNeighbor, ErrVertexNotFound
//     for bad neighbor entries.
//
// Complexity: O(d) where d = len(v.Neighbors()).
func (g *Graph[K, V]) AddVertex(v *Vertex[K, V]) error {
	if v.IsNil() {
		return g.reject(ErrNilVertex)
	}
	if _, exists := g.vertices.Get(v.id); exists {
		return g.reject(errors.Wrapf(ErrDuplicateID, "add vertex %v", v.id))
	}
	if err := validateNeighbors(v.id, v.adjacency); err != nil {
		return g.reject(err)
	}
	var n Neighbor[K]
	for _, n = range v.adjacency {
		if _, ok := g.vertices.Get(n.ID); !ok {
			return g.reject(errors.Wrapf(ErrVertexNotFound, "add vertex %v: neighbor %v", v.id, n.ID))
		}
	}

	g.vertices.Set(v.id, NewVertex[K, V](v.id, v.value))
	for _, n = range v.adjacency {
		g.link(v.id, n.ID, n.Cost)
	}
	g.report("core: vertex %v added with %d edges", v.id, len(v.adjacency))

	return nil
}

// Vertex returns the live vertex with the given id.
// The returned pointer may be used to read or SetValue; its adjacency can
// only change through Graph methods.
//
// Errors: ErrVertexNotFound.
func (g *Graph[K, V]) Vertex(id K) (*Vertex[K, V], error) {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %v", id)
	}

	return v, nil
}

// HasVertex reports whether id is present.
func (g *Graph[K, V]) HasVertex(id K) bool {
	_, ok := g.vertices.Get(id)
	return ok
}

// RemoveVertex deletes the vertex and every incident edge from the catalog
// and from the neighbors' adjacency.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d·d') where d' is the largest neighbor degree.
func (g *Graph[K, V]) RemoveVertex(id K) error {
	v, ok := g.vertices.Get(id)
	if !ok {
		return g.reject(errors.Wrapf(ErrVertexNotFound, "remove vertex %v", id))
	}

	// unlink shrinks v.adjacency; iterate over a snapshot.
	var n Neighbor[K]
	for _, n = range v.Neighbors() {
		g.unlink(id, n.ID)
	}
	g.vertices.Delete(id)
	g.report("core: vertex %v removed", id)

	return nil
}

// VertexCount returns the number of vertices.
func (g *Graph[K, V]) VertexCount() int { return g.vertices.Len() }

// VertexIDs returns all vertex IDs in insertion order.
func (g *Graph[K, V]) VertexIDs() []K {
	ids := make([]K, 0, g.vertices.Len())
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}

	return ids
}

// Vertices returns the live vertices in insertion order.
func (g *Graph[K, V]) Vertices() []*Vertex[K, V] {
	out := make([]*Vertex[K, V], 0, g.vertices.Len())
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}
