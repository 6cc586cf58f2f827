// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "github.com/pkg/errors"

var (
	// ErrBadShape indicates non-positive dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates a row or column outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a non-square matrix where one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates an ID that has no row in the matrix.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")
)
