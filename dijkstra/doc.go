// SPDX-License-Identifier: MIT

// Package dijkstra computes least-cost paths on a core.Graph, whose edges are
// undirected and carry finite non-negative costs.
//
// Overview:
//
//   - Run computes distances from one source to every vertex in
//     O((V + E) log V) time using a min-heap with lazy decrease-key.
//   - Every vertex starts unreached at +Inf with the source as predecessor;
//     the source starts at 0. The closest unexplored vertex is settled next,
//     ties going to the vertex inserted first into the graph.
//   - Result.Path walks predecessors back from a target. Unreachable targets
//     fail with ErrNoPath before any walk is attempted.
//
// API reference:
//
//	func Run[K comparable, V any](g *core.Graph[K, V], source K, opts ...Option) (*Result[K], error)
//	func ShortestPath[K comparable, V any](g *core.Graph[K, V], source, target K, opts ...Option) (float64, []Hop[K], error)
//
//	  - Result.Distance(id) (float64, error)  – ErrNoPath when unreachable.
//	  - Result.Reachable(id) bool
//	  - Result.Path(target) ([]Hop[K], error) – hops from target back to source.
//	  - Result.Route(target) ([]K, error)     – vertices from source to target.
//
// Options:
//
//   - WithMaxIterations(n): fail with ErrComputationLimit instead of settling
//     more than n vertices. Recommended for large graphs. ShortestPath stops
//     once the target is settled, so only the settlements up to it count.
//   - WithMaxDistance(d):   leave vertices beyond d unreached.
//   - WithLogger(l):        Debug trace of the run, tagged with a random run ID.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrVertexNotFound (matches core.ErrVertexNotFound too),
//     ErrNoPath, ErrComputationLimit, ErrCostOverflow, ErrBadMaxIterations,
//     ErrBadMaxDistance.
//   - ErrCostOverflow means a vertex is connected to the source but every
//     path to it sums past the float64 range. It is never folded into
//     ErrNoPath.
//
// Thread safety:
//
//   - A run reads the graph without locking. Do not mutate the graph while a
//     run is in progress; synchronize externally if goroutines share it.
//   - A Result is an immutable snapshot and may be shared freely.
//
// Example:
//
//	cost, hops, err := dijkstra.ShortestPath(g, 1, 4)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // target not reachable
//	}
package dijkstra
