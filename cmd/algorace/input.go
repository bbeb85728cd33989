package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/builder"
	"github.com/katalvlaran/algotrace/catalog"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/internal/config"
)

var errInputFlags = errors.New("conflicting input flags")

// inputFlags are the input knobs shared by trace and race.
type inputFlags struct {
	values   string
	target   float64
	random   bool
	vertices int
	start    int
	seed     int64
	topology string
}

// topologies maps --topology onto builder constructors. "random" is the
// seeded ring with chords and "empty" has no edges at all.
var topologies = map[string]func() builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"complete": builder.Complete,
	"star":     builder.Star,
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.values, "values", "", `Input array, e.g. "5,2,9,1" or "[1,3,5] | 3" for searches`)
	fl.Float64Var(&f.target, "target", 0, "Search target")
	fl.BoolVar(&f.random, "random", false, "Generate a random input (the default when --values is empty)")
	fl.IntVar(&f.vertices, "vertices", 0, "Random graph size (default from config)")
	fl.IntVar(&f.start, "start", 0, "Start vertex for BFS, DFS and Dijkstra")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (default from config, 0 seeds from the clock)")
	fl.StringVar(&f.topology, "topology", "random", "Graph shape: random, empty, path, cycle, complete or star")
}

// build resolves the flags against cfg into a catalog.Input for category c.
func (f *inputFlags) build(cmd *cobra.Command, c catalog.Category, cfg config.Config) (catalog.Input, error) {
	if f.random && f.values != "" {
		return catalog.Input{}, fmt.Errorf("%w: --random and --values", errInputFlags)
	}

	seed := cfg.Input.Seed
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := builder.WithSeed(seed)
	slog.Debug("Resolved input seed.", "seed", seed, "category", c)

	lo, hi, size := cfg.Input.Min, cfg.Input.Max, cfg.Input.Size
	in := catalog.Input{AutoSort: true}

	switch c {
	case catalog.Sorting:
		if f.values == "" {
			vals, err := builder.RandomValues(size, lo, hi, rnd)
			if err != nil {
				return in, err
			}
			in.Values = vals
			return in, nil
		}
		vals, err := builder.ParseValues(f.values)
		if err != nil {
			return in, err
		}
		in.Values = vals

	case catalog.Searching:
		switch {
		case f.values == "":
			vals, target, err := builder.RandomSearchInput(size, lo, hi, rnd)
			if err != nil {
				return in, err
			}
			in.Values, in.Target = vals, target
		case strings.Contains(f.values, "|"):
			if cmd.Flags().Changed("target") {
				return in, fmt.Errorf("%w: --target and a \"| target\" suffix", errInputFlags)
			}
			vals, target, err := builder.ParseSearchInput(f.values)
			if err != nil {
				return in, err
			}
			in.Values, in.Target = vals, target
		default:
			if !cmd.Flags().Changed("target") {
				return in, fmt.Errorf("%w: --values without --target", errInputFlags)
			}
			vals, err := builder.ParseValues(f.values)
			if err != nil {
				return in, err
			}
			in.Values, in.Target = vals, f.target
		}

	case catalog.Graph:
		if f.values != "" {
			return in, fmt.Errorf("%w: graph algorithms take --vertices, not --values", errInputFlags)
		}
		n := cfg.Graph.Vertices
		if cmd.Flags().Changed("vertices") {
			n = f.vertices
		}
		g, err := f.graph(n, rnd)
		if err != nil {
			return in, err
		}
		in.Graph, in.Start = g, f.start
	}
	return in, nil
}

// graph builds the --topology graph on n vertices. Presets get seeded
// weights in [1, 9] so weighted algorithms have something to compare.
func (f *inputFlags) graph(n int, rnd builder.BuilderOption) (*core.Graph, error) {
	if f.topology == "" || f.topology == "random" {
		return builder.RandomGraph(n, rnd)
	}
	opts := []builder.BuilderOption{rnd, builder.WithWeightFn(builder.From1To9WeightFn)}
	if f.topology == "empty" {
		return builder.BuildGraph(n, opts)
	}
	preset, ok := topologies[f.topology]
	if !ok {
		return nil, fmt.Errorf("unknown topology %q (want random, empty, path, cycle, complete or star)", f.topology)
	}
	return builder.BuildGraph(n, opts, preset())
}
