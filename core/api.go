// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only summary over the store.

package core

// GraphStats is a snapshot of catalog sizes and cost totals.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	// TotalCost is the sum of all edge costs.
	TotalCost float64

	// Isolated counts vertices with no incident edge.
	Isolated int
}

// Stats produces a GraphStats snapshot.
//
// Complexity: O(V + E).
func (g *Graph[K, V]) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: g.vertices.Len(),
		EdgeCount:   g.edges.Len(),
	}
	for pair := g.edges.Oldest(); pair != nil; pair = pair.Next() {
		stats.TotalCost += pair.Value.Cost
	}
	for pair := g.vertices.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value.adjacency) == 0 {
			stats.Isolated++
		}
	}

	return stats
}
