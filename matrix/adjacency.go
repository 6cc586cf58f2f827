// SPDX-License-Identifier: MIT
// Package matrix: Adjacency, the weighted adjacency matrix of a core.Graph.
//
// Determinism:
//   - Row order follows g.VertexIDs(), i.e. vertex insertion order.

package matrix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

// Adjacency pairs a square Dense with the vertex ID of each row/column.
type Adjacency[K comparable] struct {
	IDs   []K
	Index map[K]int
	Mat   *Dense
}

// NewAdjacency builds the symmetric cost matrix of g: 0 on the diagonal,
// the edge cost where an edge exists, +Inf elsewhere.
//
// Errors: ErrNilGraph, ErrBadShape for a graph with no vertices.
// Complexity: O(V² + E).
func NewAdjacency[K comparable, V any](g *core.Graph[K, V]) (*Adjacency[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.VertexIDs()
	mat, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, errors.Wrap(err, "NewAdjacency")
	}

	n := len(ids)
	index := make(map[K]int, n)
	for i, id := range ids {
		index[id] = i
	}
	for i := range mat.data {
		if i/n != i%n {
			mat.data[i] = math.Inf(1)
		}
	}
	var a, b int
	for _, e := range g.Edges() {
		a, b = index[e.A], index[e.B]
		mat.data[a*n+b] = e.Cost
		mat.data[b*n+a] = e.Cost
	}

	return &Adjacency[K]{IDs: ids, Index: index, Mat: mat}, nil
}

// Cost returns the matrix entry for the pair (a, b).
func (m *Adjacency[K]) Cost(a, b K) (float64, error) {
	i, ok := m.Index[a]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "%v", a)
	}
	j, ok := m.Index[b]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "%v", b)
	}
	return m.Mat.At(i, j)
}
