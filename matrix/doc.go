// SPDX-License-Identifier: MIT

// Package matrix provides a row-major Dense matrix, the weighted adjacency
// matrix of a core.Graph and Floyd–Warshall all-pairs least costs.
//
// Conventions:
//
//   - Row/column i of an Adjacency belongs to IDs[i], the i-th vertex in the
//     graph's insertion order.
//   - The diagonal is 0; a missing edge is +Inf, so an edge of cost 0 and a
//     missing edge stay distinguishable.
//
// AllPairs is O(V³) and meant for small graphs and for cross-checking
// single-source results; use package dijkstra for point queries.
package matrix
