// Package prim_kruskal produces step traces of the two classic Minimum
// Spanning Tree algorithms over the weighted edge list of a core.Graph:
// Kruskal's algorithm and Prim's algorithm.
//
// Both algorithms treat every edge as undirected. A disconnected input is
// not an error: the run records a "warning" step and completes with the
// spanning forest (Kruskal) or the tree of the first component (Prim).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (step.Trace, error)
//
//   - Strategy: stable sort of all edges by weight (ties keep edge-list
//     order), then one examine step per edge followed by add or skip,
//     decided by a Disjoint-Set with union by rank and path compression.
//     Every edge is examined; the run does not stop at |V|−1 edges.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph) (step.Trace, error)
//
//   - Strategy: grow one tree from the lowest vertex id. Each round scans
//     the tree vertices in the order they joined and, for each, its arcs in
//     edge-list order; the first strictly lighter crossing arc wins.
//
//   - Complexity: O(V·E) time, O(V + E) space.
//
// Steps
//
//	Kruskal: start{vertices, edges} · (examine · add|skip){from,to,weight}* ·
//	         warning{components}? · complete{totalWeight, edges}
//	Prim:    start{start} · (add{from,to,weight} · progress{totalWeight})* ·
//	         warning{visited}? · complete{totalWeight, edges}
//
// Compute dispatches to either algorithm through functional options:
//
//	tr, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
//
// Errors (sentinel):
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrUnknownMethod  if Compute receives a method other than prim or kruskal.
package prim_kruskal
