// File: types.go
// Role: Graph, Edge and Arc types, sentinel errors and constructors.

package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph is the umbrella every validation error wraps.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrVertexNotFound indicates a neighbor, edge endpoint or query that
	// references an id outside the vertex set.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight is not finite")

	// ErrTooFewVertices indicates a non-positive vertex count for FromEdges.
	ErrTooFewVertices = errors.New("core: vertex count must be positive")
)

// Edge is one weighted edge of the input edge list. Generators treat every
// edge as undirected.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Arc is one direction of an Edge as seen from its tail vertex.
type Arc struct {
	To     int
	Weight float64
}

// Graph is the immutable input of the graph generators.
type Graph struct {
	vertices []int // ascending
	adj      map[int][]int
	edges    []Edge
}

func invalid(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidGraph, sentinel, fmt.Sprintf(format, args...))
}

// NewGraph builds a Graph from an adjacency mapping and an optional weighted
// edge list. The key set of adjacency is the vertex set; every neighbor and
// every edge endpoint must be a key.
func NewGraph(adjacency map[int][]int, edges ...Edge) (*Graph, error) {
	if len(adjacency) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, ErrEmptyGraph)
	}

	g := &Graph{
		vertices: make([]int, 0, len(adjacency)),
		adj:      make(map[int][]int, len(adjacency)),
		edges:    make([]Edge, 0, len(edges)),
	}
	for v := range adjacency {
		g.vertices = append(g.vertices, v)
	}
	slices.Sort(g.vertices)

	for _, v := range g.vertices {
		nbs := adjacency[v]
		for _, u := range nbs {
			if _, ok := adjacency[u]; !ok {
				return nil, invalid(ErrVertexNotFound, "neighbor %d of vertex %d", u, v)
			}
		}
		g.adj[v] = slices.Clone(nbs)
		if g.adj[v] == nil {
			g.adj[v] = []int{}
		}
	}

	for i, e := range edges {
		if _, ok := adjacency[e.From]; !ok {
			return nil, invalid(ErrVertexNotFound, "edge %d endpoint %d", i, e.From)
		}
		if _, ok := adjacency[e.To]; !ok {
			return nil, invalid(ErrVertexNotFound, "edge %d endpoint %d", i, e.To)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, invalid(ErrBadWeight, "edge %d (%d,%d) weight %v", i, e.From, e.To, e.Weight)
		}
		g.edges = append(g.edges, e)
	}

	return g, nil
}

// FromEdges builds a Graph over vertices 0..n-1 whose adjacency is derived
// from edges: both directions are inserted in edge-list order and duplicate
// neighbors are dropped.
func FromEdges(n int, edges ...Edge) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %w: n=%d", ErrInvalidGraph, ErrTooFewVertices, n)
	}
	adjacency := make(map[int][]int, n)
	for v := 0; v < n; v++ {
		adjacency[v] = []int{}
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, invalid(ErrVertexNotFound, "edge %d (%d,%d) outside [0,%d)", i, e.From, e.To, n)
		}
		if !slices.Contains(adjacency[e.From], e.To) {
			adjacency[e.From] = append(adjacency[e.From], e.To)
		}
		if !slices.Contains(adjacency[e.To], e.From) {
			adjacency[e.To] = append(adjacency[e.To], e.From)
		}
	}

	return NewGraph(adjacency, edges...)
}
