package sorting

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/katalvlaran/algotrace/step"
)

const (
	nameMerge = "Merge Sort"
	nameQuick = "Quick Sort"
)

// nlognHint estimates steps for the divide-and-conquer sorts.
func nlognHint(n int) int { return 4*n*bits.Len(uint(n)) + 2 }

// Merge returns the trace of top-down merge sort over values.
//
// Emission order for a range [left,right] with left < right:
//
//	divide{left,right}
//	... left half ...
//	... right half ...
//	subarrays{left,mid,right,leftValues,rightValues}
//	compare + place for every merge decision, then trailing place steps
//	merge{left,mid,right}
//
// Ties take the left element, so the sort is stable.
func Merge(values []float64, opts ...Option) (step.Trace, error) {
	s, err := newSorter(values, nlognHint, opts)
	if err != nil {
		return nil, err
	}
	s.start(nameMerge)
	s.mergeSort(0, len(s.vals)-1)

	return s.finish(nameMerge), nil
}

func (s *sorter) mergeSort(left, right int) {
	if left >= right {
		return
	}
	s.emit(step.ActionDivide, nil, nil,
		fmt.Sprintf("Dividing range [%d..%d]", left, right),
		step.Params{"left": left, "right": right})

	mid := (left + right) / 2
	s.mergeSort(left, mid)
	s.mergeSort(mid+1, right)
	s.merge(left, mid, right)

	s.emit(step.ActionMerge, nil, nil,
		fmt.Sprintf("Merged range [%d..%d]", left, right),
		step.Params{"left": left, "mid": mid, "right": right})
}

// merge combines the sorted runs [left..mid] and [mid+1..right].
func (s *sorter) merge(left, mid, right int) {
	lv := slices.Clone(s.vals[left : mid+1])
	rv := slices.Clone(s.vals[mid+1 : right+1])
	var ld, rd []float64
	if s.disp != nil {
		ld = slices.Clone(s.disp[left : mid+1])
		rd = slices.Clone(s.disp[mid+1 : right+1])
	}
	leftLabel := func(i int) float64 {
		if ld != nil {
			return ld[i]
		}
		return lv[i]
	}
	rightLabel := func(j int) float64 {
		if rd != nil {
			return rd[j]
		}
		return rv[j]
	}
	labels := func(from, to int) []float64 {
		out := make([]float64, 0, to-from)
		if s.disp != nil {
			return append(out, s.disp[from:to]...)
		}
		return append(out, s.vals[from:to]...)
	}

	s.emit(step.ActionSubarrays, nil, nil,
		fmt.Sprintf("Merging [%d..%d] with [%d..%d]", left, mid, mid+1, right),
		step.Params{
			"left": left, "mid": mid, "right": right,
			"leftValues":  labels(left, mid+1),
			"rightValues": labels(mid+1, right+1),
		})

	place := func(side string, idx, k int, v, label float64) {
		s.vals[k] = v
		if s.disp != nil {
			s.disp[k] = label
		}
		s.emit(step.ActionPlace, step.Elems(k), nil,
			fmt.Sprintf("Placed %v from the %s run at index %d", label, side, k),
			step.Params{"from": side, "index": idx, "to": k, "val": label})
	}

	i, j, k := 0, 0, left
	for i < len(lv) && j < len(rv) {
		s.compare(left+i, mid+1+j, step.Params{
			"i": left + i, "j": mid + 1 + j, "val1": leftLabel(i), "val2": rightLabel(j),
		})
		if lv[i] <= rv[j] {
			place("left", i, k, lv[i], leftLabel(i))
			i++
		} else {
			place("right", j, k, rv[j], rightLabel(j))
			j++
		}
		k++
	}
	for ; i < len(lv); i, k = i+1, k+1 {
		place("left", i, k, lv[i], leftLabel(i))
	}
	for ; j < len(rv); j, k = j+1, k+1 {
		place("right", j, k, rv[j], rightLabel(j))
	}
}

// Quick returns the trace of quick sort (Lomuto partition, last element as
// pivot) over values.
//
// Emission order for a range [low,high] with low < high:
//
//	divide{low,high}
//	pivot{index,val}
//	compare per element, swap when it is strictly less than the pivot
//	place-pivot{from,to,val}
//	partition{low,high,pi}
//	... left part ... right part ...
func Quick(values []float64, opts ...Option) (step.Trace, error) {
	s, err := newSorter(values, nlognHint, opts)
	if err != nil {
		return nil, err
	}
	s.start(nameQuick)
	s.quickSort(0, len(s.vals)-1)

	return s.finish(nameQuick), nil
}

func (s *sorter) quickSort(low, high int) {
	if low >= high {
		return
	}
	s.emit(step.ActionDivide, nil, nil,
		fmt.Sprintf("Sorting range [%d..%d]", low, high),
		step.Params{"low": low, "high": high})

	pi := s.partition(low, high)
	s.emit(step.ActionPartition, step.Elems(pi), nil,
		fmt.Sprintf("Partitioned [%d..%d] around index %d", low, high, pi),
		step.Params{"low": low, "high": high, "pi": pi})

	s.quickSort(low, pi-1)
	s.quickSort(pi+1, high)
}

func (s *sorter) partition(low, high int) int {
	pivot := s.vals[high]
	pivotLabel := s.label(high)
	s.emit(step.ActionPivot, step.Elems(high), nil,
		fmt.Sprintf("Pivot %v at index %d", pivotLabel, high),
		step.Params{"index": high, "val": pivotLabel})

	i := low - 1
	for j := low; j < high; j++ {
		s.compare(j, high, step.Params{"j": j, "pivot": high, "val1": s.label(j), "val2": pivotLabel})
		if s.vals[j] < pivot {
			i++
			s.swap(i, j)
			s.emit(step.ActionSwap, step.Elems(i, j), step.Rel(i, j),
				fmt.Sprintf("Swapped indices %d and %d", i, j),
				step.Params{"i": i, "j": j, "val1": s.label(i), "val2": s.label(j)})
		}
	}

	s.swap(i+1, high)
	s.emit(step.ActionPlacePivot, step.Elems(i+1, high), step.Rel(high, i+1),
		fmt.Sprintf("Moved pivot %v to index %d", pivotLabel, i+1),
		step.Params{"from": high, "to": i + 1, "val": pivotLabel})

	return i + 1
}
