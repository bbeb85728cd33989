package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// ErrGraphNil indicates that a nil *core.Graph was passed to an MST generator.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that Compute was configured with a method name
// other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow one tree from the lowest vertex).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST trace generator chosen by opts.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph).
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (step.Trace, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// treeEdges converts accepted MST edges to step relations.
func treeEdges(mst []core.Edge) []step.Pair {
	out := make([]step.Pair, len(mst))
	for i, e := range mst {
		out[i] = step.Pair{A: e.From, B: e.To}
	}
	return out
}
