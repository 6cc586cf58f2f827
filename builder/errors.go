// SPDX-License-Identifier: MIT

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor used without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
