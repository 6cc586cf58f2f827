// SPDX-License-Identifier: MIT
// Package matrix: Floyd–Warshall all-pairs least costs.
//
// Contract:
//   - Input is a square matrix with 0 on the diagonal and +Inf for "no edge".
//   - Relaxation is strict (cand < d[i][j]), so equal alternatives never rewrite.
//
// Complexity: O(n³) time, in place.

package matrix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

// FloydWarshall replaces d[i][j] by the least cost from i to j in place.
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return errors.Wrapf(ErrDimensionMismatch, "FloydWarshall: %dx%d", d.r, d.c)
	}

	n := d.r
	data := d.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// AllPairs returns the least cost between every ordered pair of vertices of g.
// Unreachable pairs hold +Inf.
func AllPairs[K comparable, V any](g *core.Graph[K, V]) (*Adjacency[K], error) {
	adj, err := NewAdjacency(g)
	if err != nil {
		return nil, err
	}
	if err := FloydWarshall(adj.Mat); err != nil {
		return nil, err
	}
	return adj, nil
}
