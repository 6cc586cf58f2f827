// SPDX-License-Identifier: MIT

// Package graphz is a small in-memory library for weighted undirected graphs:
// build and inspect a graph, then ask for least-cost paths through it.
//
// What is in the box?
//
//	core/      Graph store: vertices with payloads, undirected edges with
//	           non-negative costs, insertion-ordered views and detail rows
//	dijkstra/  single-source least-cost search with explicit "unreachable"
//	           results, guarded path reconstruction and an iteration cap
//	builder/   deterministic fixtures (path, cycle, star, grid, random)
//	matrix/    adjacency matrix and Floyd-Warshall all-pairs table
//	report/    plain-text and lipgloss renderings of graphs and paths
//	log/       leveled Logger interface with golog and zap adapters
//	config/    YAML, dotenv and GRAPHZ_* environment settings for the CLI
//	cmd/graphz command-line front end (graphz show, path, matrix)
//
// Guarantees:
//
//   - Every edge is stored once in the edge list and once in each endpoint's
//     adjacency, and all three copies always agree on the cost.
//   - Iteration follows insertion order everywhere, so output is reproducible.
//   - Failures are sentinel errors checked with errors.Is; nothing panics on
//     user input and nothing prints from inside the library.
//
// Quick example:
//
//	    1 ──2── 2
//	    │       │
//	   10       3
//	    │       │
//	    3 ──────┘
//	    │
//	    1
//	    │
//	    4
//
//	cost, hops, _ := dijkstra.ShortestPath(g, 1, 4) // 6, via 1 → 2 → 3 → 4
//
// The store is not synchronized: share it across goroutines only behind
// your own lock.
//
//	go get github.com/katalvlaran/graphz
package graphz
