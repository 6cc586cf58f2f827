// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order views and the single-edge-per-pair rule.
//   - Check that the edge catalog and both adjacency copies never diverge.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphz/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := newEmpty(t)

	require.NoError(t, g.AddVertex(core.NewVertex(V1, Cost1)))
	require.NoError(t, g.AddVertex(core.NewVertex(V2, Cost2)))
	require.NoError(t, g.AddEdge(V1, V2, Cost3))
	assert.True(t, g.HasVertex(V1))
	assert.Equal(t, []int{V1, V2}, g.VertexIDs())

	// Duplicate leaves the store untouched.
	before := g.Edges()
	err := g.AddVertex(core.NewVertex(V1, Cost10))
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, before, g.Edges())
	v, err := g.Vertex(V1)
	require.NoError(t, err)
	assert.Equal(t, Cost1, v.Value(), "duplicate insert must not overwrite value")

	assert.ErrorIs(t, g.AddVertex(nil), core.ErrNilVertex)
}

func TestGraph_AddVertexWithNeighbors(t *testing.T) {
	g := newEmpty(t)
	require.NoError(t, g.AddVertex(core.NewVertex(V1, Cost0)))
	require.NoError(t, g.AddVertex(core.NewVertex(V2, Cost0)))

	require.NoError(t, g.AddVertex(core.NewVertex(V3, Cost0,
		core.Neighbor[int]{ID: V1, Cost: Cost2},
		core.Neighbor[int]{ID: V2, Cost: Cost3},
	)))
	cost, err := g.EdgeCost(V1, V3)
	require.NoError(t, err)
	assert.Equal(t, Cost2, cost)
	assert.Equal(t, 2, g.EdgeCount())
	requireConsistent(t, g)

	// Unknown neighbor rejects the whole vertex.
	err = g.AddVertex(core.NewVertex(V4, Cost0,
		core.Neighbor[int]{ID: V1, Cost: Cost1},
		core.Neighbor[int]{ID: V9, Cost: Cost1},
	))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(V4))
	assert.Equal(t, 2, g.EdgeCount())

	err = g.AddVertex(core.NewVertex(V4, Cost0, core.Neighbor[int]{ID: V4, Cost: Cost1}))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestGraph_VertexLookup(t *testing.T) {
	g := newEmpty(t)

	_, err := g.Vertex(V1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasVertex(V1))
	assert.Empty(t, g.VertexIDs())
	assert.Empty(t, g.Edges())

	require.NoError(t, g.AddVertex(core.NewVertex(V1, Cost1)))
	v, err := g.Vertex(V1)
	require.NoError(t, err)
	v.SetValue(Cost10)

	again, err := g.Vertex(V1)
	require.NoError(t, err)
	assert.Equal(t, Cost10, again.Value())
	assert.Equal(t, V1, again.ID())
}

func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := newDiamond(t)

	for _, pair := range [][2]int{{V1, V2}, {V2, V3}, {V1, V3}, {V3, V4}} {
		ab, err := g.EdgeCost(pair[0], pair[1])
		require.NoError(t, err)
		ba, err := g.EdgeCost(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "edge %v", pair)
		assert.True(t, g.HasEdge(pair[1], pair[0]))
	}
	requireConsistent(t, g)
}

func TestGraph_AddEdgeReplacesCost(t *testing.T) {
	g := newDiamond(t)
	count := g.EdgeCount()

	// Re-insert in reverse orientation.
	require.NoError(t, g.AddEdge(V3, V1, Cost1))

	assert.Equal(t, count, g.EdgeCount())
	cost, err := g.EdgeCost(V1, V3)
	require.NoError(t, err)
	assert.Equal(t, Cost1, cost)

	// Catalog keeps position and original orientation.
	assert.Equal(t, core.Edge[int]{A: V1, B: V3, Cost: Cost1}, g.Edges()[2])

	adj1, _ := g.Adjacency(V1)
	assert.Equal(t, []core.Neighbor[int]{{ID: V2, Cost: Cost2}, {ID: V3, Cost: Cost1}}, adj1)
	adj3, _ := g.Adjacency(V3)
	assert.Contains(t, adj3, core.Neighbor[int]{ID: V1, Cost: Cost1})
	requireConsistent(t, g)
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := newDiamond(t)

	assert.ErrorIs(t, g.AddEdge(V1, V9, Cost1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(V9, V1, Cost1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(V1, V1, Cost1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(V1, V4, -1), core.ErrBadCost)
	assert.ErrorIs(t, g.AddEdge(V1, V4, math.NaN()), core.ErrBadCost)
	assert.ErrorIs(t, g.AddEdge(V1, V4, math.Inf(1)), core.ErrBadCost)

	assert.Equal(t, 4, g.EdgeCount(), "rejected edges must not be stored")
	requireConsistent(t, g)
}

func TestGraph_EdgeCostMissing(t *testing.T) {
	g := newDiamond(t)

	_, err := g.EdgeCost(V1, V4)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.EdgeCost(V1, V9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := newDiamond(t)

	require.NoError(t, g.RemoveEdge(V3, V2))
	assert.False(t, g.HasEdge(V2, V3))
	assert.Equal(t, 3, g.EdgeCount())
	requireConsistent(t, g)

	assert.ErrorIs(t, g.RemoveEdge(V2, V3), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(V2, V9), core.ErrVertexNotFound)
}

func TestGraph_RemoveVertex(t *testing.T) {
	g := newDiamond(t)

	require.NoError(t, g.RemoveVertex(V3))
	assert.Equal(t, []int{V1, V2, V4}, g.VertexIDs())
	assert.Equal(t, []core.Edge[int]{{A: V1, B: V2, Cost: Cost2}}, g.Edges())

	v4, err := g.Vertex(V4)
	require.NoError(t, err)
	assert.Zero(t, v4.Degree())
	requireConsistent(t, g)

	assert.ErrorIs(t, g.RemoveVertex(V3), core.ErrVertexNotFound)
}

func TestGraph_Details(t *testing.T) {
	g := newDiamond(t)

	rows := g.Details()
	require.Len(t, rows, 4)
	assert.Equal(t, core.Detail[int, float64]{
		ID:    V3,
		Value: 30,
		Neighbors: []core.Neighbor[int]{
			{ID: V2, Cost: Cost3},
			{ID: V1, Cost: Cost10},
			{ID: V4, Cost: Cost1},
		},
	}, rows[2])

	// Rows are detached copies.
	rows[0].Neighbors[0].Cost = 99
	cost, _ := g.EdgeCost(V1, V2)
	assert.Equal(t, Cost2, cost)
}

func TestGraph_Stats(t *testing.T) {
	g := newDiamond(t)
	require.NoError(t, g.AddVertex(core.NewVertex(V9, Cost0)))

	assert.Equal(t, core.GraphStats{VertexCount: 5, EdgeCount: 4, TotalCost: 16, Isolated: 1}, g.Stats())
}

func TestGraph_Clone(t *testing.T) {
	g := newDiamond(t)
	c := g.Clone()

	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Details(), c.Details())

	require.NoError(t, c.AddEdge(V1, V4, Cost3))
	assert.False(t, g.HasEdge(V1, V4), "clone must not share adjacency")
}
