// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Neighbor, Edge, Graph, GraphOption, sentinel errors and the
//       NewGraph constructor.
// Invariants:
//   - Vertex IDs are unique within a Graph.
//   - Every edge exists exactly once in the edge catalog and once in each
//     endpoint's adjacency, with the same cost in all three places.
//   - At most one edge per unordered pair; no self-loops.

package core

import (
	"math"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/graphz/log"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates a nil *Vertex was passed in.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrDuplicateID indicates a vertex ID already present in the graph.
	ErrDuplicateID = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the two vertices are not connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadCost indicates a negative, NaN or infinite edge cost.
	ErrBadCost = errors.New("core: edge cost must be finite and non-negative")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateNeighbor indicates a seed vertex listing the same neighbor twice.
	ErrDuplicateNeighbor = errors.New("core: neighbor listed twice")

	// ErrCostMismatch indicates two seed vertices disagree on the cost of their edge.
	ErrCostMismatch = errors.New("core: endpoints disagree on edge cost")
)

// Neighbor is one adjacency entry: the vertex on the other side and the edge cost.
type Neighbor[K comparable] struct {
	ID   K
	Cost float64
}

// Vertex is a node of the graph carrying an arbitrary Value.
//
// The ID is fixed at construction. The adjacency is owned by the Graph the
// vertex lives in and is changed only through Graph edge methods.
type Vertex[K comparable, V any] struct {
	id        K
	value     V
	adjacency []Neighbor[K]
}

// NewVertex builds a detached vertex. The optional neighbors are used only
// when the vertex is handed to NewGraph or Graph.AddVertex.
func NewVertex[K comparable, V any](id K, value V, neighbors ...Neighbor[K]) *Vertex[K, V] {
	adj := make([]Neighbor[K], len(neighbors))
	copy(adj, neighbors)

	return &Vertex[K, V]{id: id, value: value, adjacency: adj}
}

// Edge is an undirected weighted connection between A and B.
// A and B keep the orientation of the call that created the edge.
type Edge[K comparable] struct {
	A    K
	B    K
	Cost float64
}

// Has reports whether id is one of the endpoints.
func (e Edge[K]) Has(id K) bool { return e.A == id || e.B == id }

// pairKey is the catalog key of an edge, oriented as first inserted.
type pairKey[K comparable] struct {
	a, b K
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	logger  log.Logger
	verbose bool
}

// WithLogger routes mutation messages and rejected operations to l.
func WithLogger(l log.Logger) GraphOption {
	return func(c *graphConfig) { c.logger = l }
}

// WithVerbose reports successful mutations at Info level instead of Debug.
// Use it for interactive sessions; bulk loaders should leave it off.
func WithVerbose() GraphOption {
	return func(c *graphConfig) { c.verbose = true }
}

// Graph is the in-memory weighted undirected graph store.
//
// vertices preserves insertion order for iteration while giving O(1) lookup.
// edges is the canonical edge list, also in insertion order.
//
// A Graph is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every mutation and query themselves.
type Graph[K comparable, V any] struct {
	vertices *orderedmap.OrderedMap[K, *Vertex[K, V]]
	edges    *orderedmap.OrderedMap[pairKey[K], *Edge[K]]

	logger  log.Logger
	verbose bool
}

// NewGraph creates a Graph seeded from vertices.
//
// Each seed vertex is copied, so the caller keeps ownership of the values
// passed in. Every (neighbor, cost) pair is folded into the edge catalog as
// an unordered edge; the same edge listed from the other endpoint is
// suppressed. A pair listed from one side only is mirrored to the other.
//
// Seeds are validated eagerly and nothing is returned on failure:
//   - ErrNilVertex, ErrDuplicateID for bad vertex entries;
//   - ErrBadCost, ErrLoopNotAllowed, ErrDuplicateNeighbor for bad adjacency entries;
//   - ErrVertexNotFound when a neighbor is not among the seeds;
//   - ErrCostMismatch when the two endpoints list different costs.
//
// Complexity: O(V + E).
func NewGraph[K comparable, V any](vertices []*Vertex[K, V], opts ...GraphOption) (*Graph[K, V], error) {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[K, V]{
		vertices: orderedmap.New[K, *Vertex[K, V]](),
		edges:    orderedmap.New[pairKey[K], *Edge[K]](),
		logger:   log.OrNop(cfg.logger),
		verbose:  cfg.verbose,
	}

	if err := g.seed(vertices); err != nil {
		g.logger.Warn("core: seeding rejected: %v", err)
		return nil, err
	}
	if len(vertices) > 0 {
		g.report("core: seeded %d vertices, %d edges", g.vertices.Len(), g.edges.Len())
	}

	return g, nil
}

// seed registers copies of vertices with their declared adjacency, then
// derives the edge catalog and fills in missing mirror entries.
func (g *Graph[K, V]) seed(vertices []*Vertex[K, V]) error {
	// Stage 1: register vertices, validating their own adjacency entries.
	var v *Vertex[K, V]
	for _, v = range vertices {
		if v.IsNil() {
			return ErrNilVertex
		}
		if _, exists := g.vertices.Get(v.id); exists {
			return errors.Wrapf(ErrDuplicateID, "seed %v", v.id)
		}
		if err := validateNeighbors(v.id, v.adjacency); err != nil {
			return err
		}
		g.vertices.Set(v.id, v.clone())
	}

	// Stage 2: derive the edge catalog in seed order.
	var (
		pair          *orderedmap.Pair[K, *Vertex[K, V]]
		n             Neighbor[K]
		other         *Vertex[K, V]
		ok            bool
		idx           int
		existing      *Edge[K]
		existingFound bool
	)
	for pair = g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		v = pair.Value
		for _, n = range v.adjacency {
			other, ok = g.vertices.Get(n.ID)
			if !ok {
				return errors.Wrapf(ErrVertexNotFound, "seed %v lists neighbor %v", v.id, n.ID)
			}
			existing, _, existingFound = g.lookupEdge(v.id, n.ID)
			if existingFound {
				if existing.Cost != n.Cost {
					return errors.Wrapf(ErrCostMismatch, "edge %v-%v: %g vs %g", v.id, n.ID, existing.Cost, n.Cost)
				}
				continue
			}

			// Mirror entry: verify or append.
			idx = other.neighborIndex(v.id)
			if idx >= 0 {
				if other.adjacency[idx].Cost != n.Cost {
					return errors.Wrapf(ErrCostMismatch, "edge %v-%v: %g vs %g", v.id, n.ID, n.Cost, other.adjacency[idx].Cost)
				}
			} else {
				other.adjacency = append(other.adjacency, Neighbor[K]{ID: v.id, Cost: n.Cost})
			}
			g.edges.Set(pairKey[K]{a: v.id, b: n.ID}, &Edge[K]{A: v.id, B: n.ID, Cost: n.Cost})
		}
	}

	return nil
}

// validateNeighbors checks the adjacency of a vertex that is about to enter a graph.
func validateNeighbors[K comparable](id K, neighbors []Neighbor[K]) error {
	seen := make(map[K]struct{}, len(neighbors))
	var n Neighbor[K]
	for _, n = range neighbors {
		if err := validateCost(n.Cost); err != nil {
			return errors.Wrapf(err, "vertex %v neighbor %v", id, n.ID)
		}
		if n.ID == id {
			return errors.Wrapf(ErrLoopNotAllowed, "vertex %v", id)
		}
		if _, dup := seen[n.ID]; dup {
			return errors.Wrapf(ErrDuplicateNeighbor, "vertex %v neighbor %v", id, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	return nil
}

// validateCost rejects costs the shortest-path engine cannot handle.
func validateCost(cost float64) error {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return errors.Wrapf(ErrBadCost, "cost %g", cost)
	}

	return nil
}

// report emits a successful-mutation message at the configured verbosity.
func (g *Graph[K, V]) report(format string, args ...any) {
	if g.verbose {
		g.logger.Info(format, args...)
		return
	}
	g.logger.Debug(format, args...)
}

// reject logs a rejected operation and returns err unchanged.
func (g *Graph[K, V]) reject(err error) error {
	g.logger.Warn("%v", err)
	return err
}
