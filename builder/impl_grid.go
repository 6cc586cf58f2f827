// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// impl_grid.go: Grid(rows, cols).
//
// Canonical model:
//   • 4-neighborhood grid; vertex IDs use the fixed scheme "r,c" (row-major),
//     a deliberate exception to cfg.idFn to keep coordinates explicit.
//   • For each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Cell (r,c) has value r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string, int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				methodGrid, rows, cols, minGridDim)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := ensureVertex(g, id, r*cols+c); err != nil {
					return errors.Wrapf(err, "%s: vertex %s", methodGrid, id)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := connect(methodGrid, g, cfg, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, cfg, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
