package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algotrace/bfs"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dfs"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/prim_kruskal"
	"github.com/katalvlaran/algotrace/searching"
	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/step"
)

// Sentinel errors for catalog lookups and generation.
var (
	// ErrUnknownAlgorithm indicates a name that matches no catalog entry.
	ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

	// ErrInvalidInput indicates an Input that does not fit the algorithm's
	// category, e.g. a graph algorithm without a graph.
	ErrInvalidInput = errors.New("catalog: invalid input")
)

// Category groups algorithms that take the same kind of input.
type Category string

const (
	Sorting   Category = "sorting"
	Searching Category = "searching"
	Graph     Category = "graph"
)

// Input carries every possible generator argument. Each category reads only
// its own fields.
type Input struct {
	// Values are the sort keys or the search array.
	Values []float64
	// Display, when set, travels with Values through sorting traces.
	Display []float64
	// Target is the searched value.
	Target float64
	// AutoSort sorts a copy of Values before running an algorithm that
	// needs ascending input.
	AutoSort bool

	// Graph and Start feed the graph algorithms. Kruskal and Prim ignore Start.
	Graph *core.Graph
	Start int
}

type generator func(ctx context.Context, in Input) (step.Trace, error)

// Algorithm describes one catalog entry.
type Algorithm struct {
	Name           string   `json:"name" yaml:"name"`
	Key            string   `json:"key" yaml:"key"`
	Category       Category `json:"category" yaml:"category"`
	TimeComplexity string   `json:"time_complexity" yaml:"time_complexity"`
	// SpeedFactor is a relative pace hint for race presentation; lower is faster.
	SpeedFactor int `json:"speed_factor" yaml:"speed_factor"`
	// NeedsSorted marks searches that assume ascending input.
	NeedsSorted bool `json:"needs_sorted" yaml:"needs_sorted"`

	gen generator
}

func sortWith(fn func([]float64, ...sorting.Option) (step.Trace, error)) generator {
	return func(_ context.Context, in Input) (step.Trace, error) {
		if in.Display != nil {
			return fn(in.Values, sorting.WithDisplayValues(in.Display))
		}
		return fn(in.Values)
	}
}

func searchWith(fn func([]float64, float64) (step.Trace, error)) generator {
	return func(_ context.Context, in Input) (step.Trace, error) {
		return fn(in.Values, in.Target)
	}
}

var algorithms = []Algorithm{
	{Name: "Bubble Sort", Key: "bubble", Category: Sorting, TimeComplexity: "O(n²)", SpeedFactor: 55, gen: sortWith(sorting.Bubble)},
	{Name: "Selection Sort", Key: "selection", Category: Sorting, TimeComplexity: "O(n²)", SpeedFactor: 50, gen: sortWith(sorting.Selection)},
	{Name: "Insertion Sort", Key: "insertion", Category: Sorting, TimeComplexity: "O(n²)", SpeedFactor: 45, gen: sortWith(sorting.Insertion)},
	{Name: "Merge Sort", Key: "merge", Category: Sorting, TimeComplexity: "O(n log n)", SpeedFactor: 30, gen: sortWith(sorting.Merge)},
	{Name: "Quick Sort", Key: "quick", Category: Sorting, TimeComplexity: "O(n log n) avg, O(n²) worst", SpeedFactor: 28, gen: sortWith(sorting.Quick)},

	{Name: "Linear Search", Key: "linear", Category: Searching, TimeComplexity: "O(n)", SpeedFactor: 40, gen: searchWith(searching.Linear)},
	{Name: "Binary Search", Key: "binary", Category: Searching, TimeComplexity: "O(log n)", SpeedFactor: 15, NeedsSorted: true, gen: searchWith(searching.Binary)},
	{Name: "Jump Search", Key: "jump", Category: Searching, TimeComplexity: "O(√n)", SpeedFactor: 25, NeedsSorted: true, gen: searchWith(searching.Jump)},
	{Name: "Interpolation Search", Key: "interpolation", Category: Searching, TimeComplexity: "O(log log n) avg, O(n) worst", SpeedFactor: 18, NeedsSorted: true, gen: searchWith(searching.Interpolation)},
	{Name: "Exponential Search", Key: "exponential", Category: Searching, TimeComplexity: "O(log n)", SpeedFactor: 20, NeedsSorted: true, gen: searchWith(searching.Exponential)},

	{Name: "Breadth First Search", Key: "bfs", Category: Graph, TimeComplexity: "O(V + E)", SpeedFactor: 35,
		gen: func(ctx context.Context, in Input) (step.Trace, error) {
			return bfs.BFS(in.Graph, in.Start, bfs.WithContext(ctx))
		}},
	{Name: "Depth First Search", Key: "dfs", Category: Graph, TimeComplexity: "O(V + E)", SpeedFactor: 30,
		gen: func(ctx context.Context, in Input) (step.Trace, error) {
			return dfs.DFS(in.Graph, in.Start, dfs.WithContext(ctx))
		}},
	{Name: "Dijkstra's Algorithm", Key: "dijkstra", Category: Graph, TimeComplexity: "O(V² + E)", SpeedFactor: 45,
		gen: func(_ context.Context, in Input) (step.Trace, error) {
			return dijkstra.Dijkstra(in.Graph, in.Start)
		}},
	{Name: "Kruskal's Algorithm", Key: "kruskal", Category: Graph, TimeComplexity: "O(E log E)", SpeedFactor: 38,
		gen: func(_ context.Context, in Input) (step.Trace, error) {
			return prim_kruskal.Compute(in.Graph, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
		}},
	{Name: "Prim's Algorithm", Key: "prim", Category: Graph, TimeComplexity: "O(V·E)", SpeedFactor: 40,
		gen: func(_ context.Context, in Input) (step.Trace, error) {
			return prim_kruskal.Compute(in.Graph, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
		}},
}

// List returns every algorithm in catalog order: sorting, searching, graph.
func List() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ByCategory returns the algorithms of c in catalog order.
func ByCategory(c Category) []Algorithm {
	var out []Algorithm
	for _, a := range algorithms {
		if a.Category == c {
			out = append(out, a)
		}
	}
	return out
}

// Lookup finds an algorithm by display name or key, ignoring case.
func Lookup(nameOrKey string) (Algorithm, error) {
	q := strings.TrimSpace(nameOrKey)
	for _, a := range algorithms {
		if strings.EqualFold(a.Key, q) || strings.EqualFold(a.Name, q) {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, nameOrKey)
}
