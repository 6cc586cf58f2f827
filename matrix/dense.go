// SPDX-License-Identifier: MIT
// Package matrix: Dense, row-major float64 storage.
//
// Complexity: At/Set O(1); NewDense O(r*c) memory.

package matrix

import "github.com/pkg/errors"

// Dense is a fixed-size row-major matrix.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c zero matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrBadShape, "NewDense(%d, %d)", rows, cols)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// At returns the element at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if err := d.check(i, j); err != nil {
		return 0, err
	}
	return d.data[i*d.c+j], nil
}

// Set writes v at (i, j).
func (d *Dense) Set(i, j int, v float64) error {
	if err := d.check(i, j); err != nil {
		return err
	}
	d.data[i*d.c+j] = v
	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)
	return out
}

func (d *Dense) check(i, j int) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return errors.Wrapf(ErrIndexOutOfBounds, "(%d,%d) in %dx%d", i, j, d.r, d.c)
	}
	return nil
}
