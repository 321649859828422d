// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// BuilderOption customizes the constructors by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

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

// WithWeightFn overrides the edge cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPrizeFn overrides the prize generator used by PrizeCollecting.
// Panics on nil.
func WithPrizeFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPrizeFn(nil)")
	}
	return func(c *builderConfig) { c.prizeFn = fn }
}
