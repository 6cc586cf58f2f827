// SPDX-License-Identifier: MIT
// File: types.go
// Role: Hop, sentinel errors and the functional options of a run.
//
// Options:
//
//	– WithMaxIterations: cap on settled vertices; exceeding it fails the run.
//	– WithMaxDistance:   vertices farther than this are left unreached.
//	– WithLogger:        debug trace of each run, tagged with a run ID.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrVertexNotFound    if the source or target is not in the graph
//	                       (also matches core.ErrVertexNotFound).
//	– ErrNoPath            if the target is not reachable from the source.
//	– ErrComputationLimit  if the run needs more than MaxIterations settlements.
//	– ErrCostOverflow      if a path cost no longer fits in a float64.
//	– ErrBadMaxIterations  if MaxIterations < 0.
//	– ErrBadMaxDistance    if MaxDistance < 0 or NaN.

package dijkstra

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/core"
	"github.com/katalvlaran/graphz/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source or target does not exist in the graph.
	// It wraps core.ErrVertexNotFound so either sentinel matches with errors.Is.
	ErrVertexNotFound = errors.WithMessage(core.ErrVertexNotFound, "dijkstra")

	// ErrNoPath indicates the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrComputationLimit indicates the search exceeded MaxIterations settlements.
	ErrComputationLimit = errors.New("dijkstra: computation limit exceeded")

	// ErrCostOverflow indicates a path sum overflowed to +Inf, which would
	// otherwise be indistinguishable from "unreached".
	ErrCostOverflow = errors.New("dijkstra: path cost overflows float64")

	// ErrBadMaxIterations indicates a negative MaxIterations.
	ErrBadMaxIterations = errors.New("dijkstra: MaxIterations must be non-negative")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Hop is one step of a reconstructed path: the vertex and its predecessor
// on the least-cost path from the source.
type Hop[K comparable] struct {
	ID          K
	Predecessor K
}

// Options configures a run.
//
// MaxIterations – maximum number of vertices to settle; 0 means unlimited.
// MaxDistance   – vertices whose distance would exceed this stay unreached.
//
//	Default is +Inf (no cap).
//
// Logger        – receives Debug records; defaults to a no-op logger.
type Options struct {
	MaxIterations int
	MaxDistance   float64
	Logger        log.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithMaxIterations caps the number of settled vertices. Use it on large or
// untrusted graphs to bound the work of a single query.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMaxDistance leaves vertices farther than max from the source unreached.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger sets the logger for run tracing.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxIterations: 0 (unlimited).
//   - MaxDistance:   +Inf (explore everything reachable).
//   - Logger:        log.NoOpLogger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		MaxDistance:   math.Inf(1),
		Logger:        log.NoOpLogger{},
	}
}

// newOptions applies opts over DefaultOptions and validates the result.
func newOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Options{}, err
	}

	return cfg, nil
}

// validate checks option ranges after all Option funcs have been applied.
func (o *Options) validate() error {
	if o.MaxIterations < 0 {
		return errors.Wrapf(ErrBadMaxIterations, "got %d", o.MaxIterations)
	}
	if o.MaxDistance < 0 || math.IsNaN(o.MaxDistance) {
		return errors.Wrapf(ErrBadMaxDistance, "got %g", o.MaxDistance)
	}
	o.Logger = log.OrNop(o.Logger)

	return nil
}
