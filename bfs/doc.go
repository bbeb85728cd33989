// Package bfs produces a step trace of breadth-first search over a core.Graph.
//
// What
//
//   - start{start} on the start vertex.
//   - For every dequeued vertex a process{vertex, depth} step.
//   - For every neighbor of that vertex, in adjacency order:
//   - discover{from, to, depth} when the neighbor is seen for the first time
//     (it is marked and enqueued immediately),
//   - skip{from, to} when it was already marked.
//   - complete{visited} highlighting every visited vertex in visit order.
//
// BFS reads only the unweighted adjacency view; edge weights are ignored.
//
// Determinism
//
//	The queue is FIFO and neighbors are taken in the order the caller gave
//	them, so the trace is fully reproducible.
//
// Complexity (V = |Vertices|, E = |adjacency entries|)
//
//   - Time:   O(V + E)
//   - Steps:  1 + V' + E' + 1 for the V' reachable vertices and their E' entries.
//
// Options
//
//   - WithContext(ctx): abort between dequeues when ctx is done.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not in the vertex set.
//   - ctx.Err()               if the context is cancelled mid-run.
package bfs
