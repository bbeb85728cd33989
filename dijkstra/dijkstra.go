package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/step"
)

// runner holds the mutable state of one Dijkstra run.
type runner struct {
	vertices []int
	adj      map[int][]core.Arc
	dist     map[int]float64
	prev     map[int]int
	visited  map[int]bool
	rec      *step.Recorder
}

// Dijkstra returns the trace of Dijkstra's algorithm on g from start.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//  4. The sum of all weights must be finite (ErrWeightOverflow). It bounds
//     every shortest-path distance.
func Dijkstra(g *core.Graph, start int) (step.Trace, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}
	// Upfront O(E) scan so no step is produced for invalid input.
	total := 0.0
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge (%d,%d) weight %v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		total += e.Weight
	}
	if math.IsInf(total, 1) {
		return nil, fmt.Errorf("%w: %d edges", ErrWeightOverflow, len(g.Edges()))
	}

	vertices := g.Vertices()
	n := len(vertices)
	r := &runner{
		vertices: vertices,
		adj:      g.WeightedNeighbors(),
		dist:     make(map[int]float64, n),
		prev:     make(map[int]int, n),
		visited:  make(map[int]bool, n),
		rec:      step.NewRecorder(2*n + 4*len(g.Edges()) + 2),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0

	r.rec.Emit(step.Step{
		Elements: step.Elems(start),
		Message:  fmt.Sprintf("Starting Dijkstra from vertex %d with distance 0", start),
		Action:   step.ActionStart,
		Params:   step.Params{"start": start, "distance": 0.0},
	})

	for {
		cur, ok := r.closest()
		if !ok {
			break
		}
		r.visited[cur] = true
		r.rec.Emit(step.Step{
			Elements: step.Elems(cur),
			Message:  fmt.Sprintf("Processing vertex %d with distance %v", cur, r.dist[cur]),
			Action:   step.ActionProcess,
			Params:   step.Params{"vertex": cur, "distance": r.dist[cur]},
		})
		for _, a := range r.adj[cur] {
			if !r.visited[a.To] {
				r.relax(cur, a)
			}
		}
	}

	r.complete(start)
	return r.rec.Trace(), nil
}

// closest returns the first unvisited vertex, in vertex order, with the
// smallest finite tentative distance.
func (r *runner) closest() (int, bool) {
	best, found := math.Inf(1), false
	var at int
	for _, v := range r.vertices {
		if !r.visited[v] && r.dist[v] < best {
			best, at, found = r.dist[v], v, true
		}
	}
	return at, found
}

// relax examines the arc cur→a.To and updates its distance on strict improvement.
func (r *runner) relax(cur int, a core.Arc) {
	to := a.To
	cand := r.dist[cur] + a.Weight
	r.rec.Emit(step.Step{
		Elements:  step.Elems(cur, to),
		Relations: step.Rel(cur, to),
		Message:   fmt.Sprintf("Examining edge (%d, %d) with weight %v", cur, to, a.Weight),
		Action:    step.ActionExamine,
		Params:    step.Params{"from": cur, "to": to, "weight": a.Weight},
	})

	old := r.dist[to]
	if cand < old {
		p := step.Params{"from": cur, "to": to, "new": cand}
		msg := fmt.Sprintf("Distance to %d set to %v", to, cand)
		if !math.IsInf(old, 1) {
			p["old"] = old
			msg = fmt.Sprintf("Distance to %d improved from %v to %v", to, old, cand)
		}
		r.dist[to] = cand
		r.prev[to] = cur
		r.rec.Emit(step.Step{
			Elements:  step.Elems(to),
			Relations: step.Rel(cur, to),
			Message:   msg,
			Action:    step.ActionUpdate,
			Params:    p,
		})
		return
	}

	r.rec.Emit(step.Step{
		Elements:  step.Elems(to),
		Relations: step.Rel(cur, to),
		Message:   fmt.Sprintf("No update: %v is not shorter than %v", cand, old),
		Action:    step.ActionSkip,
		Params:    step.Params{"from": cur, "to": to, "candidate": cand, "current": old},
	})
}

// complete emits the final step: reachable vertices in vertex order, their
// distances, and every shortest-path tree edge (prev[v], v).
func (r *runner) complete(start int) {
	var (
		reach []int
		dists []float64
		tree  []step.Pair
	)
	for _, v := range r.vertices {
		if math.IsInf(r.dist[v], 1) {
			continue
		}
		reach = append(reach, v)
		dists = append(dists, r.dist[v])
		if p, ok := r.prev[v]; ok && v != start {
			tree = append(tree, step.Pair{A: p, B: v})
		}
	}

	r.rec.Emit(step.Step{
		Elements:  reach,
		Relations: tree,
		Message:   fmt.Sprintf("Dijkstra complete, shortest paths from %d to %d vertices", start, len(reach)),
		Action:    step.ActionComplete,
		Params:    step.Params{"start": start, "reachable": len(reach), "distances": dists},
	})
}
