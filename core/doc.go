// Package core defines the immutable graph input consumed by the graph trace
// generators (bfs, dfs, dijkstra, prim_kruskal).
//
// A Graph is an adjacency mapping from integer vertex ids to ordered neighbor
// lists, optionally paired with a weighted edge list. Weighted algorithms
// never read the adjacency lists; they build an undirected weighted view from
// the edge list with WeightedNeighbors.
//
// Determinism
//
//   - Vertices() returns ids in ascending order. Generators iterate the
//     vertex set in this order wherever a tie must be broken.
//   - Neighbors(v) preserves the order the caller supplied.
//   - WeightedNeighbors() inserts both directions of every edge in edge-list
//     order, so iteration over it is reproducible.
//
// Immutability
//
//	NewGraph and FromEdges copy their inputs. Accessors return copies. A Graph
//	is therefore safe to share between goroutines without locking, and no
//	generator can change what the caller passed in.
//
// Errors
//
//	Every validation failure wraps ErrInvalidGraph together with a specific
//	sentinel (ErrEmptyGraph, ErrVertexNotFound, ErrBadWeight, ErrTooFewVertices),
//	so callers can branch on either level with errors.Is.
//
// Complexity
//
//   - NewGraph: O(V log V + E) time, O(V + E) memory.
//   - WeightedNeighbors: O(V + E).
package core
