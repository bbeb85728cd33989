package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/bfs"
	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// ExampleBFS_gridTraversal shows BFS layering on a 3×3 grid, printing the
// order in which vertices are processed.
func ExampleBFS_gridTraversal() {
	// vertex id = row*3 + col
	adj := make(map[int][]int, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := r*3 + c
			if c+1 < 3 {
				adj[id] = append(adj[id], id+1)
				adj[id+1] = append(adj[id+1], id)
			}
			if r+1 < 3 {
				adj[id] = append(adj[id], id+3)
				adj[id+3] = append(adj[id+3], id)
			}
		}
	}
	g, err := core.NewGraph(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr, _ := bfs.BFS(g, 0)
	var order []int
	for _, s := range tr {
		if s.Action == step.ActionProcess {
			order = append(order, s.Elements[0])
		}
	}
	fmt.Println(order)
	fmt.Println(tr.Last().Message)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// BFS complete, visited 9 vertices
}
