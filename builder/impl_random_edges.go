// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// impl_random_edges.go: RandomEdges(n, m): n vertices, m random draws.
//
// Contract:
//   • n ≥ 2, m ≥ 0; an RNG is required when m > 0 (ErrNeedRandSource).
//   • Each draw picks two distinct vertices uniformly, then a cost. A pair
//     drawn again only has its cost replaced, so EdgeCount() ≤ m.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

const (
	methodRandomEdges      = "RandomEdges"
	minRandomEdgesVertices = 2
)

// RandomEdges builds n vertices and connects m randomly drawn pairs.
// Complexity: O(n + m).
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minRandomEdgesVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d",
				methodRandomEdges, n, minRandomEdgesVertices)
		}
		if m < 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: m=%d < 0", methodRandomEdges, m)
		}
		if cfg.rng == nil && m > 0 {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomEdges)
		}

		ids, err := addVertices(methodRandomEdges, g, cfg, n)
		if err != nil {
			return err
		}
		var i, j int
		for k := 0; k < m; k++ {
			i = cfg.rng.Intn(n)
			j = cfg.rng.Intn(n - 1)
			if j >= i {
				j++
			}
			if err := connect(methodRandomEdges, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}

		return nil
	}
}
