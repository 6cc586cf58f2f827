// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • p ∈ {0,1} needs no RNG (empty / complete graph); otherwise an RNG is
//     required (ErrNeedRandSource) so results are never silently unseeded.
//   • Each pair i<j is visited in lexicographic order and kept when
//     rng.Float64() < p; the cost is drawn only for kept pairs.

package builder

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds G(n, p) on vertices cfg.idFn(0..n-1).
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d",
				methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				methodRandomSparse, p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}

		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := connect(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
