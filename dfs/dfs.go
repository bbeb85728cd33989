package dfs

import (
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited map[int]bool
	order   []int
	rec     *step.Recorder
}

// DFS returns the depth-first search trace of g from start.
func DFS(g *core.Graph, start int, opts ...Option) (step.Trace, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make(map[int]bool, n),
		order:   make([]int, 0, n),
		rec:     step.NewRecorder(6 * n),
	}

	w.rec.Emit(step.Step{
		Elements: step.Elems(start),
		Message:  fmt.Sprintf("Starting DFS from vertex %d", start),
		Action:   step.ActionStart,
		Params:   step.Params{"start": start},
	})

	// 4. Traverse
	if err := w.traverse(start, -1, false); err != nil {
		return nil, err
	}

	w.rec.Emit(step.Step{
		Elements: w.order,
		Message:  fmt.Sprintf("DFS complete, visited %d vertices", len(w.order)),
		Action:   step.ActionComplete,
		Params:   step.Params{"start": start, "visited": len(w.order)},
	})
	return w.rec.Trace(), nil
}

// traverse visits id, entered from parent when hasParent is set, and
// recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id, parent int, hasParent bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.order = append(w.order, id)

	visit := step.Step{
		Elements: step.Elems(id),
		Message:  fmt.Sprintf("Visiting vertex %d", id),
		Action:   step.ActionVisit,
		Params:   step.Params{"vertex": id},
	}
	if hasParent {
		visit.Relations = step.Rel(parent, id)
		visit.Message = fmt.Sprintf("Visiting vertex %d from %d", id, parent)
		visit.Params["parent"] = parent
	}
	w.rec.Emit(visit)

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}

	for _, nb := range nbs {
		if w.visited[nb] {
			w.rec.Emit(step.Step{
				Elements:  step.Elems(id, nb),
				Relations: step.Rel(id, nb),
				Message:   fmt.Sprintf("Vertex %d already visited, skipping", nb),
				Action:    step.ActionSkip,
				Params:    step.Params{"from": id, "to": nb},
			})
			continue
		}

		w.rec.Emit(step.Step{
			Elements:  step.Elems(id, nb),
			Relations: step.Rel(id, nb),
			Message:   fmt.Sprintf("Exploring edge (%d, %d)", id, nb),
			Action:    step.ActionExplore,
			Params:    step.Params{"from": id, "to": nb},
		})
		if err = w.traverse(nb, id, true); err != nil {
			return err
		}
		w.rec.Emit(step.Step{
			Elements:  step.Elems(id),
			Relations: step.Rel(id, nb),
			Message:   fmt.Sprintf("Backtracking to vertex %d", id),
			Action:    step.ActionBacktrack,
			Params:    step.Params{"from": nb, "to": id},
		})
	}

	return nil
}
