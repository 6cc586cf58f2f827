// SPDX-License-Identifier: MIT
// Package: graphz/builder
//
// config.go: builder knobs and their deterministic defaults.
//
// Defaults:
//   • idFn   = strconv.Itoa   ("0","1","2",...)
//   • rng    = nil            (pure/deterministic unless seeded)
//   • costFn = constant 1

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultEdgeCost is the cost used when no cost option is given.
const DefaultEdgeCost float64 = 1

// CostFn draws one edge cost. rng may be nil for deterministic functions.
type CostFn func(rng *rand.Rand) float64

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	idFn   func(int) string
	rng    *rand.Rand
	costFn CostFn
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   strconv.Itoa,
		costFn: ConstantCostFn(DefaultEdgeCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// cost draws the next edge cost.
func (c builderConfig) cost() float64 {
	return c.costFn(c.rng)
}

// WithIDScheme sets the vertex ID generator: index -> ID.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}

// WithConstantCost gives every edge cost w.
func WithConstantCost(w float64) BuilderOption {
	return WithCostFn(ConstantCostFn(w))
}

// WithUniformCost draws costs uniformly from [min, max).
// Without an RNG it falls back to min.
func WithUniformCost(min, max float64) BuilderOption {
	return WithCostFn(UniformCostFn(min, max))
}

// ConstantCostFn always returns value.
func ConstantCostFn(value float64) CostFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformCostFn returns costs in [min, max); min when rng is nil or max <= min.
func UniformCostFn(min, max float64) CostFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// LetterIDFn maps 0..25 to "A".."Z" and continues with "AA", "AB", ...
func LetterIDFn(idx int) string {
	var buf []byte
	for idx++; idx > 0; idx = (idx - 1) / 26 {
		buf = append([]byte{byte('A' + (idx-1)%26)}, buf...)
	}
	return string(buf)
}
