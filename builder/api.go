package builder

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
)

const (
	methodBuildGraph   = "BuildGraph"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodRandomChords = "RandomChords"
	methodRandomGraph  = "RandomGraph"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2

	// chordAttempts bounds the rejection sampling of RandomChords.
	chordAttempts = 100
	// maxRandomChords caps the extra edges RandomGraph adds to its ring.
	maxRandomChords = 5
)

// edgeSet accumulates undirected simple edges over vertices 0..n-1.
type edgeSet struct {
	n     int
	edges []core.Edge
	seen  map[[2]int]bool
}

func newEdgeSet(n int) *edgeSet {
	return &edgeSet{n: n, seen: make(map[[2]int]bool)}
}

// add appends {u, v} unless it is a loop or already present in either direction.
func (s *edgeSet) add(u, v int, w float64) bool {
	if u == v || s.seen[[2]int{u, v}] {
		return false
	}
	s.seen[[2]int{u, v}] = true
	s.seen[[2]int{v, u}] = true
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: w})
	return true
}

// Constructor adds edges to the set under construction. Constructors
// validate their own minimum size and emit edges in a stable order.
type Constructor func(es *edgeSet, cfg builderConfig) error

// BuildGraph resolves bopts, applies cons in order over vertices 0..n-1 and
// returns the resulting graph. Constructor errors are wrapped with
// "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 1 {
		return nil, builderErrorf(methodBuildGraph, ErrTooFewVertices, "n=%d", n)
	}
	cfg := newBuilderConfig(bopts...)
	es := newEdgeSet(n)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(es, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	g, err := core.FromEdges(n, es.edges...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuildGraph, ErrConstructFailed, err)
	}
	return g, nil
}

// Path adds {i, i+1} for i = 0..n-2. Requires n ≥ 2.
func Path() Constructor {
	return func(es *edgeSet, cfg builderConfig) error {
		if es.n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", es.n, minPathNodes)
		}
		for i := 0; i+1 < es.n; i++ {
			es.add(i, i+1, cfg.weight(DefaultWeightFn))
		}
		return nil
	}
}

// Cycle adds {i, (i+1)%n} for i = 0..n-1. Requires n ≥ 3.
func Cycle() Constructor {
	return func(es *edgeSet, cfg builderConfig) error {
		if es.n < minCycleNodes {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", es.n, minCycleNodes)
		}
		ring(es, cfg, DefaultWeightFn)
		return nil
	}
}

// Complete adds every pair i<j in lexicographic order.
func Complete() Constructor {
	return func(es *edgeSet, cfg builderConfig) error {
		for i := 0; i < es.n; i++ {
			for j := i + 1; j < es.n; j++ {
				es.add(i, j, cfg.weight(DefaultWeightFn))
			}
		}
		return nil
	}
}

// Star adds {0, i} for i = 1..n-1. Requires n ≥ 2.
func Star() Constructor {
	return func(es *edgeSet, cfg builderConfig) error {
		if es.n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", es.n, minStarNodes)
		}
		for i := 1; i < es.n; i++ {
			es.add(0, i, cfg.weight(DefaultWeightFn))
		}
		return nil
	}
}

// RandomChords tries to add k extra edges between random distinct vertices
// that are not yet adjacent, giving up after 100 draws in total. Requires
// an rng. Weights default to From1To9WeightFn.
func RandomChords(k int) Constructor {
	return func(es *edgeSet, cfg builderConfig) error {
		if cfg.rng == nil {
			return builderErrorf(methodRandomChords, ErrNeedRandSource, "k=%d", k)
		}
		want := len(es.edges) + k
		for attempts := 0; len(es.edges) < want && attempts < chordAttempts; attempts++ {
			u, v := cfg.rng.Intn(es.n), cfg.rng.Intn(es.n)
			if u == v || es.seen[[2]int{u, v}] {
				continue
			}
			es.add(u, v, cfg.weight(From1To9WeightFn))
		}
		return nil
	}
}

// RandomGraph returns a connected weighted graph on n vertices: the ring
// {i, (i+1)%n} plus up to min(5, n/2) random chords, weights in [1, 9] unless
// WithWeightFn overrides them. Requires WithSeed or WithRand.
func RandomGraph(n int, opts ...BuilderOption) (*core.Graph, error) {
	if newBuilderConfig(opts...).rng == nil {
		return nil, builderErrorf(methodRandomGraph, ErrNeedRandSource, "n=%d", n)
	}
	ringCons := func(es *edgeSet, cfg builderConfig) error {
		ring(es, cfg, From1To9WeightFn)
		return nil
	}
	return BuildGraph(n, opts, ringCons, RandomChords(min(maxRandomChords, n/2)))
}

// ring adds {i, (i+1)%n}; for n < 3 the loop and the duplicate are dropped.
func ring(es *edgeSet, cfg builderConfig, def WeightFn) {
	for i := 0; i < es.n; i++ {
		es.add(i, (i+1)%es.n, cfg.weight(def))
	}
}
