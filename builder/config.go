// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed
// by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Cost generator for edges.
	weightFn WeightFn
	// Cost generator for node prizes (PrizeCollecting).
	prizeFn WeightFn
}

// newBuilderConfig applies opts over the defaults: no RNG, unit edge
// costs, unit prizes.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		prizeFn:  DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
