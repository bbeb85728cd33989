package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	ctx     context.Context
	queue   []int
	visited map[int]bool
	depth   map[int]int
	order   []int
	rec     *step.Recorder
}

// BFS returns the breadth-first search trace of g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(g *core.Graph, start int, opts ...Option) (step.Trace, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		ctx:     o.Ctx,
		queue:   make([]int, 0, n),
		visited: make(map[int]bool, n),
		depth:   make(map[int]int, n),
		order:   make([]int, 0, n),
		rec:     step.NewRecorder(4 * n),
	}

	w.rec.Emit(step.Step{
		Elements: step.Elems(start),
		Message:  fmt.Sprintf("Starting BFS from vertex %d", start),
		Action:   step.ActionStart,
		Params:   step.Params{"start": start},
	})
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	w.rec.Emit(step.Step{
		Elements: w.order,
		Message:  fmt.Sprintf("BFS complete, visited %d vertices", len(w.order)),
		Action:   step.ActionComplete,
		Params:   step.Params{"start": start, "visited": len(w.order)},
	})
	return w.rec.Trace(), nil
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.depth[id] = d
	w.order = append(w.order, id)
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.rec.Emit(step.Step{
			Elements: step.Elems(cur),
			Message:  fmt.Sprintf("Processing vertex %d", cur),
			Action:   step.ActionProcess,
			Params:   step.Params{"vertex": cur, "depth": w.depth[cur]},
		})

		nbs, err := w.graph.Neighbors(cur)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			w.neighbor(cur, nb)
		}
	}
	return nil
}

// neighbor emits discover or skip for the edge cur→nb.
func (w *walker) neighbor(cur, nb int) {
	if w.visited[nb] {
		w.rec.Emit(step.Step{
			Elements:  step.Elems(cur, nb),
			Relations: step.Rel(cur, nb),
			Message:   fmt.Sprintf("Vertex %d already visited, skipping", nb),
			Action:    step.ActionSkip,
			Params:    step.Params{"from": cur, "to": nb},
		})
		return
	}
	d := w.depth[cur] + 1
	w.rec.Emit(step.Step{
		Elements:  step.Elems(cur, nb),
		Relations: step.Rel(cur, nb),
		Message:   fmt.Sprintf("Discovered vertex %d from %d", nb, cur),
		Action:    step.ActionDiscover,
		Params:    step.Params{"from": cur, "to": nb, "depth": d},
	})
	w.enqueue(nb, d)
}
