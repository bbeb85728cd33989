package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/step"
)

// triangle: 0-1 (1), 1-2 (2), 0-2 (5); shortest 0→2 goes through 1.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 5},
	)
	require.NoError(t, err)
	return g
}

// TestDijkstra_Errors checks validation happens before any step.
func TestDijkstra_Errors(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(triangle(t), 9)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	neg, err := core.FromEdges(2, core.Edge{From: 0, To: 1, Weight: -1})
	require.NoError(t, err)
	tr, err := dijkstra.Dijkstra(neg, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Nil(t, tr)

	huge, err := core.FromEdges(3,
		core.Edge{From: 0, To: 1, Weight: 1e308},
		core.Edge{From: 1, To: 2, Weight: 1e308},
	)
	require.NoError(t, err)
	tr, err = dijkstra.Dijkstra(huge, 0)
	assert.ErrorIs(t, err, dijkstra.ErrWeightOverflow)
	assert.Nil(t, tr)
}

// TestDijkstra_Triangle verifies relaxations and the shortest-path tree.
func TestDijkstra_Triangle(t *testing.T) {
	tr, err := dijkstra.Dijkstra(triangle(t), 0)
	require.NoError(t, err)
	require.NoError(t, step.Validate(tr))

	assert.Equal(t, []step.Action{
		step.ActionStart,
		step.ActionProcess, // 0
		step.ActionExamine, // 0→1
		step.ActionUpdate,  // ∞ → 1
		step.ActionExamine, // 0→2
		step.ActionUpdate,  // ∞ → 5
		step.ActionProcess, // 1
		step.ActionExamine, // 1→2
		step.ActionUpdate,  // 5 → 3
		step.ActionProcess, // 2
		step.ActionComplete,
	}, tr.Actions())

	improved := tr[8]
	old, _ := improved.Params.Float("old")
	nw, _ := improved.Params.Float("new")
	assert.Equal(t, 5.0, old)
	assert.Equal(t, 3.0, nw)

	_, hasOld := tr[3].Params["old"]
	assert.False(t, hasOld, "first reach has no finite old distance")

	done := tr.Last()
	assert.Equal(t, []int{0, 1, 2}, done.Elements)
	assert.Equal(t, []step.Pair{{A: 0, B: 1}, {A: 1, B: 2}}, done.Relations)
	assert.Equal(t, []float64{0, 1, 3}, done.Params["distances"])
}

// TestDijkstra_TieBreak checks the first minimum in vertex order wins and
// that equal candidates do not update.
func TestDijkstra_TieBreak(t *testing.T) {
	g, err := core.FromEdges(4,
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 3, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 1},
	)
	require.NoError(t, err)
	tr, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	var processed []int
	for _, s := range tr {
		if s.Action == step.ActionProcess {
			processed = append(processed, s.Elements[0])
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, processed)
	assert.Equal(t, 1, tr.Count(step.ActionSkip)) // 2→3 ties with 1→3
	assert.Contains(t, tr.Last().Relations, step.Pair{A: 1, B: 3})
}

// TestDijkstra_Unreachable ensures the run stops when only infinite
// distances remain and unreachable vertices are never highlighted.
func TestDijkstra_Unreachable(t *testing.T) {
	g, err := core.FromEdges(4,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 2, To: 3, Weight: 1},
	)
	require.NoError(t, err)
	tr, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1}, tr.Elements())
	reach, _ := tr.Last().Params.Int("reachable")
	assert.Equal(t, 2, reach)
}

// TestDijkstra_Isolated covers a single vertex without edges.
func TestDijkstra_Isolated(t *testing.T) {
	g, err := core.NewGraph(map[int][]int{4: {}})
	require.NoError(t, err)
	tr, err := dijkstra.Dijkstra(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []step.Action{step.ActionStart, step.ActionProcess, step.ActionComplete}, tr.Actions())
	assert.Empty(t, tr.Last().Relations)
}
