// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphz/core"
)

// Common vertex IDs used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
	V9 = 9
)

// Common costs used across core tests (avoid magic numbers in test bodies).
const (
	Cost0  = 0.0
	Cost1  = 1.0
	Cost2  = 2.0
	Cost3  = 3.0
	Cost10 = 10.0
)

// newEmpty returns an empty int-keyed graph with float64 values.
func newEmpty(t *testing.T, opts ...core.GraphOption) *core.Graph[int, float64] {
	t.Helper()
	g, err := core.NewGraph[int, float64](nil, opts...)
	require.NoError(t, err)

	return g
}

// newDiamond builds the four-vertex fixture
//
//	1 -2- 2 -3- 3 -1- 4
//	 \_____10_____/
//
// with vertex values 10·id.
func newDiamond(t *testing.T) *core.Graph[int, float64] {
	t.Helper()
	g := newEmpty(t)
	for _, id := range []int{V1, V2, V3, V4} {
		require.NoError(t, g.AddVertex(core.NewVertex(id, float64(10*id))))
	}
	require.NoError(t, g.AddEdge(V1, V2, Cost2))
	require.NoError(t, g.AddEdge(V2, V3, Cost3))
	require.NoError(t, g.AddEdge(V1, V3, Cost10))
	require.NoError(t, g.AddEdge(V3, V4, Cost1))

	return g
}

// requireConsistent checks that every catalog edge appears in both
// endpoints' adjacency with the same cost and that adjacency holds nothing else.
func requireConsistent[K comparable, V any](t *testing.T, g *core.Graph[K, V]) {
	t.Helper()
	entries := 0
	for _, id := range g.VertexIDs() {
		adj, err := g.Adjacency(id)
		require.NoError(t, err)
		entries += len(adj)
		for _, n := range adj {
			cost, err := g.EdgeCost(id, n.ID)
			require.NoError(t, err)
			require.Equal(t, cost, n.Cost, "adjacency %v→%v disagrees with catalog", id, n.ID)
		}
	}
	require.Equal(t, 2*g.EdgeCount(), entries, "adjacency entries must be twice the edge count")
}
