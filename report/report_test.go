// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/dijkstra"
	"github.com/katalvlaran/graphz/matrix"
	"github.com/katalvlaran/graphz/report"
)

// newGolden stores fixtures under testdata/golden; regenerate with -update.
func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// roadMap is the four-vertex sample plus one isolated vertex.
func roadMap(t *testing.T) *core.Graph[int, string] {
	t.Helper()
	g, err := core.NewGraph[int, string](nil)
	require.NoError(t, err)
	for i, v := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(core.NewVertex(i+1, v)))
	}
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(1, 3, 10))
	require.NoError(t, g.AddEdge(3, 4, 1))

	return g
}

func TestWriteDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteDetails(&buf, roadMap(t)))
	newGolden(t).Assert(t, "details", buf.Bytes())
}

func TestWriteEdges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteEdges(&buf, roadMap(t)))
	newGolden(t).Assert(t, "edges", buf.Bytes())
}

func TestWritePath(t *testing.T) {
	g := roadMap(t)

	cost, hops, err := dijkstra.ShortestPath(g, 1, 4)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WritePath(&buf, 1, cost, hops))
	newGolden(t).Assert(t, "path", buf.Bytes())

	buf.Reset()
	require.NoError(t, report.WritePath[int](&buf, 3, 0, nil))
	newGolden(t).Assert(t, "path_self", buf.Bytes())
}

func TestWriteDistances(t *testing.T) {
	all, err := matrix.AllPairs(roadMap(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteDistances(&buf, all))
	newGolden(t).Assert(t, "distances", buf.Bytes())
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "2", report.FormatCost(2))
	assert.Equal(t, "2.5", report.FormatCost(2.5))
	assert.Equal(t, "0", report.FormatCost(0))
}

func TestTables(t *testing.T) {
	g := roadMap(t)

	details := report.DetailsTable(g)
	assert.Contains(t, details, "Neighbors")
	assert.Contains(t, details, "2(3) 1(10) 4(1)")
	assert.Contains(t, details, "┌")

	edges := report.EdgesTable(g)
	assert.Contains(t, edges, "Cost")
	assert.Contains(t, edges, "10")
}
