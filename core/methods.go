// File: methods.go
// Role: Read-only queries over Graph.
//
// Determinism:
//   - Vertices() is ascending; Neighbors() and Edges() keep caller order.

package core

import (
	"fmt"
	"slices"
)

// Vertices returns all vertex ids in ascending order.
func (g *Graph) Vertices() []int { return slices.Clone(g.vertices) }

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// HasVertex reports whether id is in the vertex set.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the adjacency list of id in the order it was supplied.
func (g *Graph) Neighbors(id int) ([]int, error) {
	nbs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	return slices.Clone(nbs), nil
}

// Adjacency returns a deep copy of the adjacency mapping.
func (g *Graph) Adjacency() map[int][]int {
	out := make(map[int][]int, len(g.adj))
	for v, nbs := range g.adj {
		out[v] = slices.Clone(nbs)
	}
	return out
}

// Edges returns the weighted edge list in the order it was supplied.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Weighted reports whether the graph carries a weighted edge list.
func (g *Graph) Weighted() bool { return len(g.edges) > 0 }

// WeightedNeighbors builds the undirected weighted adjacency from the edge
// list. For every edge (u,v,w), v is appended to u's arcs and u to v's arcs,
// in edge-list order. Vertices without edges map to an empty slice.
//
// Complexity: O(V + E).
func (g *Graph) WeightedNeighbors() map[int][]Arc {
	out := make(map[int][]Arc, len(g.vertices))
	for _, v := range g.vertices {
		out[v] = []Arc{}
	}
	for _, e := range g.edges {
		out[e.From] = append(out[e.From], Arc{To: e.To, Weight: e.Weight})
		out[e.To] = append(out[e.To], Arc{To: e.From, Weight: e.Weight})
	}
	return out
}
