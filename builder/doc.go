// Package builder constructs the inputs the trace generators consume:
// random and parsed value arrays, search inputs, and weighted graphs.
//
// Randomness lives here and never inside a generator. Every stochastic
// builder draws from the *rand.Rand configured with WithSeed or WithRand and
// fails with ErrNeedRandSource without one, so equal seeds give equal inputs.
//
// The package offers:
//
//   - Value arrays:
//     – RandomValues:       n integer-valued keys in [lo, hi].
//     – RandomSearchInput:  ascending keys plus a target drawn from them.
//     – ParseValues:        "5, 2 9,1" → []float64 (at most MaxValues).
//     – ParseSearchInput:   "[1, 3, 5] | 3" → values and target.
//   - Graphs, composed from Constructors by BuildGraph over vertices 0..n-1:
//     – Path, Cycle, Complete, Star: deterministic topologies.
//     – RandomChords:        extra non-loop, non-duplicate edges.
//     – RandomGraph:         ring plus up to min(5, n/2) random chords with
//     integer weights in [1, 9].
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn.
//
// Errors are sentinels wrapped with the failing method name; branch with
// errors.Is.
package builder
