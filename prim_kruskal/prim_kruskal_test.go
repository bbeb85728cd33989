package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/prim_kruskal"
	"github.com/katalvlaran/algotrace/step"
)

// buildTriangle: 0-1 (1), 1-2 (2), 0-2 (4). MST {0-1, 1-2}, weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 2},
		core.Edge{From: 0, To: 2, Weight: 4},
	)
	require.NoError(t, err)
	return g
}

// buildMediumGraph creates a connected graph on n vertices: a chain for
// connectivity plus extra random edges, integer weights, fixed seed.
func buildMediumGraph(t testing.TB, seed int64, n, edgesCount int) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, edgesCount)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: i - 1, To: i, Weight: float64(1 + r.Intn(10))})
	}
	for len(edges) < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{From: u, To: v, Weight: float64(1 + r.Intn(100))})
	}
	g, err := core.FromEdges(n, edges...)
	require.NoError(t, err)
	return g
}

func totalWeight(t *testing.T, tr step.Trace) float64 {
	t.Helper()
	w, ok := tr.Last().Params.Float("totalWeight")
	require.True(t, ok)
	return w
}

func TestNilGraph(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrGraphNil)
	_, err = prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrGraphNil)
}

// TestKruskal_Triangle checks examine/add/skip order and the final tree.
func TestKruskal_Triangle(t *testing.T) {
	tr, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	require.NoError(t, step.Validate(tr))

	assert.Equal(t, []step.Action{
		step.ActionStart,
		step.ActionExamine, step.ActionAdd, // 0-1
		step.ActionExamine, step.ActionAdd, // 1-2
		step.ActionExamine, step.ActionSkip, // 0-2 closes a cycle
		step.ActionComplete,
	}, tr.Actions())
	assert.Equal(t, []int{0, 1, 2}, tr[0].Elements)

	done := tr.Last()
	assert.Equal(t, 3.0, totalWeight(t, tr))
	assert.Equal(t, []int{0, 1, 2}, done.Elements)
	assert.Equal(t, []step.Pair{{A: 0, B: 1}, {A: 1, B: 2}}, done.Relations)
}

// TestKruskal_StableTies ensures equal weights keep edge-list order.
func TestKruskal_StableTies(t *testing.T) {
	g, err := core.FromEdges(3,
		core.Edge{From: 1, To: 2, Weight: 5},
		core.Edge{From: 0, To: 1, Weight: 5},
		core.Edge{From: 0, To: 2, Weight: 5},
	)
	require.NoError(t, err)
	tr, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, []step.Pair{{A: 1, B: 2}, {A: 0, B: 1}}, tr.Last().Relations)
	assert.Equal(t, 1, tr.Count(step.ActionSkip))
}

// TestKruskal_Forest covers a disconnected graph and a self-loop.
func TestKruskal_Forest(t *testing.T) {
	g, err := core.FromEdges(5,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 2, To: 2, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 2},
	)
	require.NoError(t, err)
	tr, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.NoError(t, step.Validate(tr))

	i := tr.Find(step.ActionWarning)
	require.Equal(t, len(tr)-2, i)
	comps, _ := tr[i].Params.Int("components")
	assert.Equal(t, 3, comps) // {0,1} {2,3} {4}
	assert.Equal(t, 2, tr.Count(step.ActionAdd))
	assert.Equal(t, 1, tr.Count(step.ActionSkip))
	assert.Equal(t, 3.0, totalWeight(t, tr))
}

// TestPrim_Triangle checks add/progress pairs and cumulative weight.
func TestPrim_Triangle(t *testing.T) {
	tr, err := prim_kruskal.Prim(buildTriangle(t))
	require.NoError(t, err)
	require.NoError(t, step.Validate(tr))

	assert.Equal(t, []step.Action{
		step.ActionStart,
		step.ActionAdd, step.ActionProgress,
		step.ActionAdd, step.ActionProgress,
		step.ActionComplete,
	}, tr.Actions())

	second, _ := tr[2].Params.Float("totalWeight")
	assert.Equal(t, 1.0, second)
	from, _ := tr[3].Params.Int("from")
	assert.Equal(t, 1, from, "1-2 (2) beats 0-2 (4)")

	done := tr.Last()
	assert.Equal(t, 3.0, totalWeight(t, tr))
	assert.Equal(t, []int{0, 1, 2}, done.Elements)
	assert.Equal(t, []step.Pair{{A: 0, B: 1}, {A: 1, B: 2}}, done.Relations)
}

// TestPrim_TieBreak checks the first strictly lighter arc wins.
func TestPrim_TieBreak(t *testing.T) {
	g, err := core.FromEdges(3,
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 0, To: 1, Weight: 1},
	)
	require.NoError(t, err)
	tr, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	to, _ := tr[1].Params.Int("to")
	assert.Equal(t, 2, to)
}

// TestPrim_Disconnected halts with a warning and keeps the partial tree.
func TestPrim_Disconnected(t *testing.T) {
	g, err := core.FromEdges(4,
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 2, To: 3, Weight: 1},
	)
	require.NoError(t, err)
	tr, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	require.NoError(t, step.Validate(tr))

	assert.Equal(t, []step.Action{
		step.ActionStart,
		step.ActionAdd, step.ActionProgress,
		step.ActionWarning,
		step.ActionComplete,
	}, tr.Actions())
	assert.Equal(t, []int{0, 1}, tr.Last().Elements)
	assert.Equal(t, 3.0, totalWeight(t, tr))
}

func TestSingleVertex(t *testing.T) {
	g, err := core.NewGraph(map[int][]int{7: {}})
	require.NoError(t, err)

	kr, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []step.Action{step.ActionStart, step.ActionComplete}, kr.Actions())

	pr, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []step.Action{step.ActionStart, step.ActionComplete}, pr.Actions())
	assert.Equal(t, []int{7}, pr.Last().Elements)
}

// TestEqualWeight compares both algorithms on seeded random graphs.
func TestEqualWeight(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildMediumGraph(t, seed, 12, 30)
		kr, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		pr, err := prim_kruskal.Prim(g)
		require.NoError(t, err)

		assert.Equal(t, totalWeight(t, kr), totalWeight(t, pr), "seed %d", seed)
		assert.Len(t, kr.Last().Relations, 11)
		assert.Len(t, pr.Last().Relations, 11)
		assert.Equal(t, -1, kr.Find(step.ActionWarning))
	}
}

func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	def, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Contains(t, def[0].Message, "Kruskal")

	pr, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Contains(t, pr[0].Message, "Prim")

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
