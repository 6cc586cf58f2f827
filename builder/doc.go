// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures for tests,
// benchmarks and demos.
//
// What & Why:
//
//	Hand-writing graphs beyond a handful of vertices is error-prone. builder
//	composes named topologies (Path, Cycle, Star, Complete, Grid) and seeded
//	random graphs (RandomSparse, RandomEdges) into one store, with reproducible vertex
//	IDs, insertion order and edge costs.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformCost(1, 10)},
//	    builder.Grid(20, 20),
//	)
//
// Determinism:
//
//   - Same options, same seed and same constructor order ⇒ identical graph.
//   - Vertices are added in index order; each vertex's value is its index.
//   - Constructors reuse existing vertices, so several can be layered onto
//     one store (a repeated pair only has its cost replaced).
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, plus any core sentinel (e.g. core.ErrBadCost from a
//     cost function returning a negative value).
package builder
