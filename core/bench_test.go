// SPDX-License-Identifier: MIT

// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphz/core"
)

// BenchmarkAddEdge_Insert measures appending fresh edges to a star.
func BenchmarkAddEdge_Insert(b *testing.B) {
	g, _ := core.NewGraph[int, struct{}](nil)
	_ = g.AddVertex(core.NewVertex(0, struct{}{}))
	for i := 1; i <= b.N; i++ {
		_ = g.AddVertex(core.NewVertex(i, struct{}{}))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		_ = g.AddEdge(0, i, float64(i))
	}
}

// BenchmarkAddEdge_Update measures cost replacement on a fixed edge set,
// which touches the catalog and both adjacency entries.
func BenchmarkAddEdge_Update(b *testing.B) {
	const n = 100
	g, _ := core.NewGraph[int, struct{}](nil)
	for i := 0; i <= n; i++ {
		_ = g.AddVertex(core.NewVertex(i, struct{}{}))
	}
	for i := 1; i <= n; i++ {
		_ = g.AddEdge(0, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n+1, 0, float64(i))
	}
}
