// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// impl_basic.go: Path, Cycle, Star and Complete.
//
// Determinism:
//   • Vertices in index order; edges in the order documented per constructor.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1

	// StarCenterID is the fixed ID of the hub added by Star.
	StarCenterID = "Center"
)

// Path builds P_n: edges i–(i+1) for i ascending (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minPathVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n: the path edges then the closing edge (n-1)–0 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minCycleVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a hub StarCenterID plus n-1 leaves, one edge per leaf (n ≥ 2).
// The hub is added first and takes value -1.
func Star(n int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minStarVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarVertices)
		}
		if err := ensureVertex(g, StarCenterID, -1); err != nil {
			return errors.Wrapf(err, "%s: center", methodStar)
		}
		leaves, err := addVertices(methodStar, g, cfg, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := connect(methodStar, g, cfg, StarCenterID, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n: every pair i<j in lexicographic order (n ≥ 1).
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if n < minCompleteVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
