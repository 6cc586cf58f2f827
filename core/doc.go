// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted undirected Graph store.
//
// A Graph[K, V] owns Vertex[K, V] values (comparable ID K, arbitrary payload V)
// and keeps every edge in three places: once in the canonical edge catalog
// and once in each endpoint's adjacency list. All three copies are written
// by the same Graph method, so they always agree on cost.
//
// Model:
//
//   - Undirected only; at most one edge per unordered pair; no self-loops.
//   - Costs are finite and non-negative (ErrBadCost otherwise).
//   - Adding an edge between connected vertices replaces the cost in place.
//   - Vertices and edges iterate in insertion order (backed by
//     github.com/wk8/go-ordered-map), lookups are O(1).
//
// Construction:
//
//	g, err := core.NewGraph([]*core.Vertex[int, float64]{
//	    core.NewVertex(1, 7.0, core.Neighbor[int]{ID: 2, Cost: 2}),
//	    core.NewVertex(2, 3.5),
//	})
//
// Seed vertices are copied and validated eagerly: every listed neighbor must
// be a seed too, and two endpoints listing the same edge must agree on cost.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex) error          // ErrDuplicateID if the id exists
//	Vertex(id K) (*Vertex, error)       // ErrVertexNotFound
//	HasVertex(id K) bool
//	RemoveVertex(id K) error            // drops incident edges too
//
//	// Edge lifecycle
//	AddEdge(id1, id2 K, cost float64) error   // insert or replace cost
//	EdgeCost(id1, id2 K) (float64, error)     // ErrEdgeNotFound
//	HasEdge(id1, id2 K) bool
//	RemoveEdge(id1, id2 K) error
//
//	// Views
//	VertexIDs() []K
//	Vertices() []*Vertex
//	Edges() []Edge
//	Adjacency(id K) ([]Neighbor, error)
//	Details() []Detail
//	Stats() GraphStats
//	Clone() *Graph
//
// Messaging:
//
// The store never prints. Pass WithLogger to receive Debug records for every
// mutation and Warn records for every rejected call; add WithVerbose to
// promote mutation records to Info for interactive use.
//
// Concurrency:
//
// A Graph has no internal locking. It is meant for single-goroutine use;
// callers that share one must serialize all access externally.
package core
