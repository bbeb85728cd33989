package sorting_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/step"
)

type generator func([]float64, ...sorting.Option) (step.Trace, error)

var generators = map[string]generator{
	"bubble":    sorting.Bubble,
	"selection": sorting.Selection,
	"insertion": sorting.Insertion,
	"merge":     sorting.Merge,
	"quick":     sorting.Quick,
}

// TestSorting_Example checks the canonical [5,3,8,1,9] case for every algorithm.
func TestSorting_Example(t *testing.T) {
	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			tr, err := gen([]float64{5, 3, 8, 1, 9})
			require.NoError(t, err)
			require.NoError(t, step.Validate(tr))
			assert.Equal(t, []float64{1, 3, 5, 8, 9}, tr.Last().Values)
		})
	}
}

// TestSorting_Trivial covers empty and single-element input.
func TestSorting_Trivial(t *testing.T) {
	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for _, in := range [][]float64{nil, {}, {42}} {
				tr, err := gen(in)
				require.NoError(t, err)
				assert.Equal(t, []step.Action{step.ActionStart, step.ActionComplete}, tr.Actions())
			}
		})
	}
}

// TestSorting_InvalidInput rejects non-finite values before any step.
func TestSorting_InvalidInput(t *testing.T) {
	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			tr, err := gen([]float64{1, math.NaN()})
			assert.ErrorIs(t, err, sorting.ErrInvalidInput)
			assert.Nil(t, tr)

			_, err = gen([]float64{math.Inf(-1)})
			assert.ErrorIs(t, err, sorting.ErrInvalidInput)

			_, err = gen([]float64{1, 2}, sorting.WithDisplayValues([]float64{1}))
			assert.ErrorIs(t, err, sorting.ErrDisplayLength)

			_, err = gen([]float64{1}, sorting.WithDisplayValues([]float64{math.NaN()}))
			assert.ErrorIs(t, err, sorting.ErrInvalidInput)
		})
	}
}

// TestSorting_Properties runs seeded random inputs through every algorithm
// and checks sortedness, permutation, purity, non-mutation and index bounds.
func TestSorting_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for iter := 0; iter < 25; iter++ {
				n := r.Intn(30)
				in := make([]float64, n)
				for i := range in {
					in[i] = float64(r.Intn(20) - 5) // with duplicates
				}
				orig := slices.Clone(in)

				tr, err := gen(in)
				require.NoError(t, err)
				require.NoError(t, step.Validate(tr))
				assert.Equal(t, orig, in, "input mutated")

				want := slices.Clone(orig)
				slices.Sort(want)
				got := tr.Last().Values
				if n == 0 {
					assert.Empty(t, got)
				} else {
					assert.Equal(t, want, got)
				}

				again, _ := gen(in)
				assert.Equal(t, tr, again, "trace not deterministic")

				for _, s := range tr {
					assert.Len(t, s.Values, n)
					for _, idx := range s.Elements {
						assert.True(t, idx >= 0 && idx < n, "index %d out of range", idx)
					}
				}
			}
		})
	}
}

// TestBubble_ComparisonCount checks textbook comparison counts are preserved.
func TestBubble_ComparisonCount(t *testing.T) {
	in := []float64{9, 8, 7, 6, 5, 4}
	n := len(in)

	tr, err := sorting.Bubble(in)
	require.NoError(t, err)
	assert.Equal(t, n*(n-1)/2, tr.Count(step.ActionCompare))
	assert.Equal(t, n-1, tr.Count(step.ActionOuterLoop))
	assert.Equal(t, n*(n-1)/2, tr.Count(step.ActionSwap))

	tr, err = sorting.Selection(in)
	require.NoError(t, err)
	assert.Equal(t, n*(n-1)/2, tr.Count(step.ActionCompare))
}

// TestSelection_SwapOnlyWhenNeeded checks no swap is emitted for sorted input.
func TestSelection_SwapOnlyWhenNeeded(t *testing.T) {
	tr, err := sorting.Selection([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Zero(t, tr.Count(step.ActionSwap))
	assert.Zero(t, tr.Count(step.ActionNewMin))
}

// TestInsertion_StepShape verifies the key/compare/shift/insert sequence.
func TestInsertion_StepShape(t *testing.T) {
	tr, err := sorting.Insertion([]float64{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []step.Action{
		step.ActionStart,
		step.ActionOuterLoop,
		step.ActionKey,
		step.ActionCompare,
		step.ActionShift,
		step.ActionInsert,
		step.ActionComplete,
	}, tr.Actions())

	shift := tr[4]
	from, _ := shift.Params.Int("from")
	to, _ := shift.Params.Int("to")
	assert.Equal(t, 0, from)
	assert.Equal(t, 1, to)
	assert.Equal(t, []float64{2, 2}, shift.Values)

	// Already ordered: the stopping comparison is still recorded.
	tr, err = sorting.Insertion([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Count(step.ActionCompare))
	assert.Zero(t, tr.Count(step.ActionShift))
}

// TestMerge_OrderAndStability checks pre/post-order emission and that equal
// keys keep their relative order.
func TestMerge_OrderAndStability(t *testing.T) {
	tr, err := sorting.Merge([]float64{1, 1, 0}, sorting.WithDisplayValues([]float64{10, 20, 30}))
	require.NoError(t, err)

	acts := tr.Actions()
	assert.Equal(t, step.ActionDivide, acts[1])
	assert.Equal(t, step.ActionMerge, acts[len(acts)-2])
	assert.Equal(t, tr.Count(step.ActionDivide), tr.Count(step.ActionMerge))
	assert.Equal(t, tr.Count(step.ActionDivide), tr.Count(step.ActionSubarrays))

	last := tr.Last()
	assert.Equal(t, []float64{0, 1, 1}, last.Values)
	assert.Equal(t, []float64{30, 10, 20}, last.Display)

	sub := tr[tr.Find(step.ActionSubarrays)]
	assert.Equal(t, []float64{10}, sub.Params["leftValues"])
	assert.Equal(t, []float64{20}, sub.Params["rightValues"])
}

// TestQuick_StrictPartition ensures equal elements are never swapped past
// the pivot.
func TestQuick_StrictPartition(t *testing.T) {
	tr, err := sorting.Quick([]float64{2, 2, 2})
	require.NoError(t, err)
	assert.Zero(t, tr.Count(step.ActionSwap))
	assert.Equal(t, tr.Count(step.ActionPivot), tr.Count(step.ActionPlacePivot))
	assert.Equal(t, tr.Count(step.ActionPivot), tr.Count(step.ActionPartition))

	// pivot precedes its partition's comparisons
	tr, err = sorting.Quick([]float64{3, 1, 2})
	require.NoError(t, err)
	acts := tr.Actions()
	assert.Equal(t, []step.Action{step.ActionStart, step.ActionDivide, step.ActionPivot, step.ActionCompare}, acts[:4])
	pi := tr[tr.Find(step.ActionPartition)]
	idx, _ := pi.Params.Int("pi")
	assert.Equal(t, 1, idx)
}

// TestDisplayValues checks labels travel with their keys and feed params.
func TestDisplayValues(t *testing.T) {
	tr, err := sorting.Bubble([]float64{2, 1}, sorting.WithDisplayValues([]float64{200, 100}))
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200}, tr.Last().Display)

	cmp := tr[tr.Find(step.ActionCompare)]
	v1, _ := cmp.Params.Float("val1")
	assert.Equal(t, 200.0, v1)

	plain, err := sorting.Bubble([]float64{2, 1})
	require.NoError(t, err)
	assert.Nil(t, plain.Last().Display)
}
