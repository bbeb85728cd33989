// Package dijkstra produces a step trace of Dijkstra's single-source
// shortest-path algorithm over the weighted edge list of a core.Graph.
//
// The weighted adjacency is built from the edge list with every edge
// inserted in both directions (core.Graph.WeightedNeighbors). The adjacency
// lists of the graph are not consulted.
//
// Selection
//
//	Each round scans the unvisited vertices in ascending id order and picks
//	the one with the strictly smallest tentative distance, so the first
//	minimum in vertex order wins a tie.
//
// Steps
//
//	start{start, distance: 0}
//	process{vertex, distance}                    per selected vertex
//	examine{from, to, weight}                    per arc to an unvisited vertex
//	update{from, to, old?, new} | skip{...}      strict improvement updates
//	complete{start, reachable, distances}        relations = shortest-path tree
//
// The algorithm stops when no unvisited vertex has a finite distance.
// Unreachable vertices are never highlighted.
//
// Complexity:
//
//	– Time:  O(V² + E)
//	– Space: O(V + E)
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the start vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrWeightOverflow  if the edge weights sum to +Inf.
package dijkstra
