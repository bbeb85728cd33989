package sorting

import (
	"fmt"

	"github.com/katalvlaran/algotrace/step"
)

const (
	nameBubble    = "Bubble Sort"
	nameSelection = "Selection Sort"
	nameInsertion = "Insertion Sort"
)

func quadraticHint(n int) int { return n*n + n + 2 }

// Bubble returns the trace of bubble sort over values.
//
// Each pass i emits "outer-loop", then for every adjacent pair j, j+1 of the
// unsorted prefix a "compare" followed by "swap" (when values[j] > values[j+1])
// or "no-swap". All n-1 passes run; there is no early exit.
func Bubble(values []float64, opts ...Option) (step.Trace, error) {
	s, err := newSorter(values, quadraticHint, opts)
	if err != nil {
		return nil, err
	}
	s.start(nameBubble)

	n := len(s.vals)
	for i := 0; i < n-1; i++ {
		s.emit(step.ActionOuterLoop, nil, nil,
			fmt.Sprintf("Pass %d", i+1), step.Params{"i": i})

		for j := 0; j < n-i-1; j++ {
			s.compare(j, j+1, step.Params{"i": j, "j": j + 1, "val1": s.label(j), "val2": s.label(j + 1)})

			if s.vals[j] > s.vals[j+1] {
				s.swap(j, j+1)
				s.emit(step.ActionSwap, step.Elems(j, j+1), step.Rel(j, j+1),
					fmt.Sprintf("Swapped indices %d and %d", j, j+1),
					step.Params{"i": j, "j": j + 1, "val1": s.label(j), "val2": s.label(j + 1)})
			} else {
				s.emit(step.ActionNoSwap, step.Elems(j, j+1), nil,
					fmt.Sprintf("Indices %d and %d already in order", j, j+1),
					step.Params{"i": j, "j": j + 1, "val1": s.label(j), "val2": s.label(j + 1)})
			}
		}
	}

	return s.finish(nameBubble), nil
}

// Selection returns the trace of selection sort over values.
//
// Each pass i emits "outer-loop", then compares the running minimum with
// every later index ("compare"), emitting "new-min" on strict improvement.
// A "swap" is emitted only when the minimum is not already at i.
func Selection(values []float64, opts ...Option) (step.Trace, error) {
	s, err := newSorter(values, quadraticHint, opts)
	if err != nil {
		return nil, err
	}
	s.start(nameSelection)

	n := len(s.vals)
	for i := 0; i < n-1; i++ {
		s.emit(step.ActionOuterLoop, nil, nil,
			fmt.Sprintf("Pass %d: finding minimum for index %d", i+1, i), step.Params{"i": i})

		minIndex := i
		for j := i + 1; j < n; j++ {
			s.compare(minIndex, j, step.Params{"i": minIndex, "j": j, "val1": s.label(minIndex), "val2": s.label(j)})

			if s.vals[j] < s.vals[minIndex] {
				old := minIndex
				minIndex = j
				s.emit(step.ActionNewMin, step.Elems(old, minIndex), nil,
					fmt.Sprintf("New minimum %v at index %d", s.label(minIndex), minIndex),
					step.Params{"oldMinIndex": old, "newMinIndex": minIndex, "val": s.label(minIndex)})
			}
		}

		if minIndex != i {
			s.swap(i, minIndex)
			s.emit(step.ActionSwap, step.Elems(i, minIndex), step.Rel(i, minIndex),
				fmt.Sprintf("Swapped indices %d and %d", i, minIndex),
				step.Params{"i": i, "minIndex": minIndex, "val1": s.label(i), "val2": s.label(minIndex)})
		}
	}

	return s.finish(nameSelection), nil
}

// Insertion returns the trace of insertion sort over values.
//
// For each i >= 1 it emits "outer-loop" and "key", then walks left: every
// comparison against the key is a "compare" step, every element moved right
// is a "shift". The walk ends on the first element not greater than the key
// (that comparison is still recorded) and the key lands with "insert".
func Insertion(values []float64, opts ...Option) (step.Trace, error) {
	s, err := newSorter(values, quadraticHint, opts)
	if err != nil {
		return nil, err
	}
	s.start(nameInsertion)

	n := len(s.vals)
	for i := 1; i < n; i++ {
		s.emit(step.ActionOuterLoop, nil, nil,
			fmt.Sprintf("Pass %d", i), step.Params{"i": i})

		key := s.vals[i]
		keyLabel := s.label(i)
		s.emit(step.ActionKey, step.Elems(i), nil,
			fmt.Sprintf("Selected key %v at index %d", keyLabel, i),
			step.Params{"i": i, "val": keyLabel})

		j := i - 1
		for j >= 0 {
			s.compare(j, j+1, step.Params{"j": j, "i": j + 1, "val1": s.label(j), "val2": keyLabel})
			if s.vals[j] <= key {
				break
			}

			s.vals[j+1] = s.vals[j]
			if s.disp != nil {
				s.disp[j+1] = s.disp[j]
			}
			s.emit(step.ActionShift, step.Elems(j, j+1), step.Rel(j, j+1),
				fmt.Sprintf("Shifted %v from index %d to %d", s.label(j), j, j+1),
				step.Params{"from": j, "to": j + 1, "val": s.label(j)})
			j--
		}

		s.vals[j+1] = key
		if s.disp != nil {
			s.disp[j+1] = keyLabel
		}
		s.emit(step.ActionInsert, step.Elems(j+1), nil,
			fmt.Sprintf("Inserted key %v at index %d", keyLabel, j+1),
			step.Params{"i": j + 1, "val": keyLabel})
	}

	return s.finish(nameInsertion), nil
}
