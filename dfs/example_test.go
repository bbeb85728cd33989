package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dfs"
)

// ExampleDFS prints the narration of a DFS over a triangle.
func ExampleDFS() {
	g, _ := core.NewGraph(map[int][]int{0: {1, 2}, 1: {0, 2}, 2: {0, 1}})
	tr, _ := dfs.DFS(g, 0)
	for _, s := range tr {
		fmt.Println(s.Message)
	}
	// Output:
	// Starting DFS from vertex 0
	// Visiting vertex 0
	// Exploring edge (0, 1)
	// Visiting vertex 1 from 0
	// Vertex 0 already visited, skipping
	// Exploring edge (1, 2)
	// Visiting vertex 2 from 1
	// Vertex 0 already visited, skipping
	// Vertex 1 already visited, skipping
	// Backtracking to vertex 1
	// Backtracking to vertex 0
	// Vertex 2 already visited, skipping
	// DFS complete, visited 3 vertices
}
