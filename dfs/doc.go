// Package dfs produces a step trace of recursive depth-first search over a
// core.Graph.
//
// Emission order for a vertex v entered from parent p:
//
//	visit{vertex: v, parent: p}        relation (p,v) when p exists
//	for each neighbor u of v, in adjacency order:
//	    explore{from: v, to: u}        before descending into an unvisited u
//	    ... subtree of u ...
//	    backtrack{from: u, to: v}      after the recursive call returns
//	  or
//	    skip{from: v, to: u}           when u was already visited
//
// The trace closes with complete{visited}, highlighting every visited vertex
// in pre-order.
//
// Recursion uses the Go call stack; depth is bounded by the longest simple
// path reachable from the start vertex.
//
// Complexity: O(V + E) time, O(V) stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
package dfs
