package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algotrace/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntWeightFn_loNegative", func() builder.WeightFn { return builder.IntWeightFn(-1, 3) }},
		{"IntWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.IntWeightFn(4, 3) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers nil-rng fallbacks and the sampled ranges.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(rng))

	u := builder.UniformWeightFn(2, 4)
	assert.Equal(t, builder.DefaultEdgeWeight, u(nil))
	assert.Equal(t, 7.0, builder.UniformWeightFn(7, 7)(rng))

	in := builder.IntWeightFn(1, 9)
	assert.Equal(t, 1.0, in(nil))
	for i := 0; i < 200; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)

		k := builder.From1To9WeightFn(rng)
		assert.GreaterOrEqual(t, k, 1.0)
		assert.LessOrEqual(t, k, 9.0)
		assert.Equal(t, float64(int(k)), k)
	}
}
