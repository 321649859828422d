package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/steinercore/builder"
)

// TestWeightFnConstructors panics on meaningless parameters.
func TestWeightFnConstructors(t *testing.T) {
	tests := map[string]func(){
		"constant negative":  func() { builder.ConstantWeightFn(-1) },
		"uniform min < 0":    func() { builder.UniformWeightFn(-1, 5) },
		"uniform max < min":  func() { builder.UniformWeightFn(5, 4) },
		"int max < min":      func() { builder.IntWeightFn(5, 4) },
		"normal stddev < 0":  func() { builder.NormalWeightFn(0, -0.1) },
		"exponential rate 0": func() { builder.ExponentialWeightFn(0) },
		"nil weight fn":      func() { builder.WithWeightFn(nil) },
		"nil prize fn":       func() { builder.WithPrizeFn(nil) },
		"nil rand":           func() { builder.WithRand(nil) },
	}
	for name, fn := range tests {
		assert.Panics(t, fn, name)
	}
}

// TestWeightFnBehavior checks ranges and the RNG-less fallback.
func TestWeightFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	uni := builder.UniformWeightFn(2, 5)
	ints := builder.IntWeightFn(1, 3)
	norm := builder.NormalWeightFn(10, 3)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 100; i++ {
		u := uni(rng)
		assert.True(t, u >= 2 && u < 5, "uniform %g", u)
		v := ints(rng)
		assert.Contains(t, []float64{1, 2, 3}, v)
		assert.GreaterOrEqual(t, norm(rng), 0.0)
		assert.GreaterOrEqual(t, exp(rng), 0.0)
	}
}
