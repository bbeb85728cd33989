package prim_kruskal

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// Prim returns the trace of Prim's algorithm on the edge list of g, grown
// from the lowest vertex id.
//
// Each round looks for the lightest arc from a tree vertex to a non-tree
// vertex. Tree vertices are scanned in the order they joined the tree and
// their arcs in edge-list order; only a strictly lighter arc replaces the
// current candidate. When no crossing arc exists before every vertex joined,
// a warning step is recorded and the run completes with the partial tree.
//
// Complexity: O(V·E) time, O(V + E) memory.
func Prim(graph *core.Graph) (step.Trace, error) {
	if graph == nil {
		return nil, ErrGraphNil
	}

	vertices := graph.Vertices()
	adj := graph.WeightedNeighbors()
	root := vertices[0]

	tree := []int{root}
	inTree := map[int]bool{root: true}
	var (
		mst         []core.Edge
		totalWeight float64
	)

	rec := step.NewRecorder(2*len(vertices) + 2)
	rec.Emit(step.Step{
		Elements: step.Elems(root),
		Message:  fmt.Sprintf("Starting Prim's algorithm from vertex %d", root),
		Action:   step.ActionStart,
		Params:   step.Params{"start": root},
	})

	for len(tree) < len(vertices) {
		best := core.Edge{Weight: math.Inf(1)}
		for _, from := range tree {
			for _, a := range adj[from] {
				if !inTree[a.To] && a.Weight < best.Weight {
					best = core.Edge{From: from, To: a.To, Weight: a.Weight}
				}
			}
		}

		if math.IsInf(best.Weight, 1) {
			rec.Emit(step.Step{
				Elements:  slices.Clone(tree),
				Relations: treeEdges(mst),
				Message:   "No more edges found. Graph may be disconnected.",
				Action:    step.ActionWarning,
				Params:    step.Params{"visited": len(tree), "vertices": len(vertices)},
			})
			break
		}

		rec.Emit(step.Step{
			Elements:  step.Elems(best.From, best.To),
			Relations: step.Rel(best.From, best.To),
			Message:   fmt.Sprintf("Adding edge (%d, %d) with weight %v to MST", best.From, best.To, best.Weight),
			Action:    step.ActionAdd,
			Params:    step.Params{"from": best.From, "to": best.To, "weight": best.Weight},
		})

		mst = append(mst, best)
		tree = append(tree, best.To)
		inTree[best.To] = true
		totalWeight += best.Weight

		rec.Emit(step.Step{
			Elements:  tree,
			Relations: treeEdges(mst),
			Message:   fmt.Sprintf("Current MST weight: %v", totalWeight),
			Action:    step.ActionProgress,
			Params:    step.Params{"totalWeight": totalWeight},
		})
	}

	rec.Emit(step.Step{
		Elements:  tree,
		Relations: treeEdges(mst),
		Message:   fmt.Sprintf("Prim's algorithm complete. MST weight: %v", totalWeight),
		Action:    step.ActionComplete,
		Params:    step.Params{"totalWeight": totalWeight, "edges": len(mst)},
	})

	return rec.Trace(), nil
}
