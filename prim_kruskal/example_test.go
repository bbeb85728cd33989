package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/prim_kruskal"
)

// ExampleKruskal_triangle runs Kruskal on a triangle: the heaviest edge
// closes a cycle and is skipped.
func ExampleKruskal_triangle() {
	g, _ := core.FromEdges(3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 4},
	)
	tr, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range tr {
		fmt.Println(s.Action, s.Message)
	}
	// Output:
	// start Starting Kruskal's algorithm. Sorted 3 edges by weight.
	// examine Examining edge (0, 1) with weight 1
	// add Adding edge (0, 1) with weight 1 to MST
	// examine Examining edge (1, 2) with weight 2
	// add Adding edge (1, 2) with weight 2 to MST
	// examine Examining edge (0, 2) with weight 4
	// skip Skipping edge (0, 2) - would create a cycle
	// complete Kruskal's algorithm complete. MST weight: 3
}

// ExamplePrim_pentagon grows a tree over a weighted pentagon with one chord.
func ExamplePrim_pentagon() {
	g, _ := core.FromEdges(5,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 2, Weight: 3},
		core.Edge{From: 2, To: 3, Weight: 4},
		core.Edge{From: 3, To: 4, Weight: 5},
		core.Edge{From: 4, To: 0, Weight: 6},
		core.Edge{From: 0, To: 2, Weight: 1},
	)
	tr, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	done := tr.Last()
	fmt.Println(done.Relations)
	fmt.Println(done.Message)
	// Output:
	// [{0 2} {0 1} {2 3} {3 4}]
	// Prim's algorithm complete. MST weight: 12
}
