package builder

import "math/rand"

// builderConfig is the resolved, immutable view of BuilderOptions.
type builderConfig struct {
	// rng is nil unless WithSeed/WithRand was given.
	rng *rand.Rand

	// weightFn draws one edge weight; nil means the caller's default.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// weight draws an edge weight, falling back to def when no WeightFn is set.
func (c builderConfig) weight(def WeightFn) float64 {
	if c.weightFn != nil {
		return c.weightFn(c.rng)
	}
	return def(c.rng)
}
