package builder

import (
	"slices"
)

const (
	methodRandomValues      = "RandomValues"
	methodRandomSearchInput = "RandomSearchInput"
)

// RandomValues returns n integer-valued keys drawn uniformly from [lo, hi].
// Requires WithSeed or WithRand.
func RandomValues(n, lo, hi int, opts ...BuilderOption) ([]float64, error) {
	if n < 0 || hi < lo {
		return nil, builderErrorf(methodRandomValues, ErrBadSize, "n=%d range=[%d,%d]", n, lo, hi)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomValues, ErrNeedRandSource, "n=%d", n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(lo + cfg.rng.Intn(hi-lo+1))
	}
	return out, nil
}

// RandomSearchInput returns n ascending keys from [lo, hi] and a target
// picked from them, so the search always hits. Requires n ≥ 1.
func RandomSearchInput(n, lo, hi int, opts ...BuilderOption) ([]float64, float64, error) {
	if n < 1 {
		return nil, 0, builderErrorf(methodRandomSearchInput, ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)
	vals, err := RandomValues(n, lo, hi, WithRand(cfg.rng))
	if err != nil {
		return nil, 0, err
	}
	slices.Sort(vals)
	return vals, vals[cfg.rng.Intn(n)], nil
}
