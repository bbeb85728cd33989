package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// Kruskal returns the trace of Kruskal's algorithm on the edge list of g.
//
// Steps:
//  1. start highlights every vertex and reports the edge count.
//  2. Edges are sorted by ascending weight with sort.SliceStable.
//  3. For each edge: examine, then add when the endpoints lie in different
//     components (union), otherwise skip. Self-loops are always skipped.
//  4. warning when fewer than |V|−1 edges were accepted.
//  5. complete highlights the endpoints of the accepted edges in the order
//     they were first added, relations = accepted edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (step.Trace, error) {
	if graph == nil {
		return nil, ErrGraphNil
	}

	vertices := graph.Vertices()
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	rec := step.NewRecorder(2*len(edges) + 3)
	rec.Emit(step.Step{
		Elements: vertices,
		Message:  fmt.Sprintf("Starting Kruskal's algorithm. Sorted %d edges by weight.", len(edges)),
		Action:   step.ActionStart,
		Params:   step.Params{"vertices": len(vertices), "edges": len(edges)},
	})

	var (
		mst         []core.Edge
		totalWeight float64
	)
	for _, e := range edges {
		p := step.Params{"from": e.From, "to": e.To, "weight": e.Weight}
		rec.Emit(step.Step{
			Elements:  step.Elems(e.From, e.To),
			Relations: step.Rel(e.From, e.To),
			Message:   fmt.Sprintf("Examining edge (%d, %d) with weight %v", e.From, e.To, e.Weight),
			Action:    step.ActionExamine,
			Params:    p,
		})

		if find(e.From) == find(e.To) {
			rec.Emit(step.Step{
				Elements:  step.Elems(e.From, e.To),
				Relations: step.Rel(e.From, e.To),
				Message:   fmt.Sprintf("Skipping edge (%d, %d) - would create a cycle", e.From, e.To),
				Action:    step.ActionSkip,
				Params:    p,
			})
			continue
		}

		union(e.From, e.To)
		mst = append(mst, e)
		totalWeight += e.Weight
		rec.Emit(step.Step{
			Elements:  step.Elems(e.From, e.To),
			Relations: step.Rel(e.From, e.To),
			Message:   fmt.Sprintf("Adding edge (%d, %d) with weight %v to MST", e.From, e.To, e.Weight),
			Action:    step.ActionAdd,
			Params:    p,
		})
	}

	covered := mstVertices(mst)
	relations := treeEdges(mst)
	if len(vertices) > 0 && len(mst) < len(vertices)-1 {
		components := len(vertices) - len(mst)
		rec.Emit(step.Step{
			Elements:  covered,
			Relations: relations,
			Message:   fmt.Sprintf("Graph is disconnected: spanning forest with %d components", components),
			Action:    step.ActionWarning,
			Params:    step.Params{"components": components},
		})
	}

	rec.Emit(step.Step{
		Elements:  covered,
		Relations: relations,
		Message:   fmt.Sprintf("Kruskal's algorithm complete. MST weight: %v", totalWeight),
		Action:    step.ActionComplete,
		Params:    step.Params{"totalWeight": totalWeight, "edges": len(mst)},
	})

	return rec.Trace(), nil
}

// mstVertices lists edge endpoints in first-seen order.
func mstVertices(mst []core.Edge) []int {
	seen := make(map[int]bool, 2*len(mst))
	out := make([]int, 0, 2*len(mst))
	for _, e := range mst {
		for _, v := range [2]int{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}
