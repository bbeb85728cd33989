package searching

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algotrace/step"
)

// ErrInvalidInput is returned when an element or the target is NaN or infinite.
var ErrInvalidInput = errors.New("searching: value is not a finite number")

// searcher owns one search run.
type searcher struct {
	vals   []float64
	target float64
	rec    *step.Recorder
}

func newSearcher(values []float64, target float64, sizeHint int) (*searcher, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, fmt.Errorf("%w: target = %v", ErrInvalidInput, target)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: values[%d] = %v", ErrInvalidInput, i, v)
		}
	}
	return &searcher{
		vals:   slices.Clone(values),
		target: target,
		rec:    step.NewRecorder(sizeHint),
	}, nil
}

func (s *searcher) emit(a step.Action, elems []int, msg string, p step.Params) {
	s.rec.Emit(step.Step{Elements: elems, Message: msg, Action: a, Params: p})
}

// compare records a probe of index i against the target.
func (s *searcher) compare(i int, key string) {
	s.emit(step.ActionCompare, step.Elems(i),
		fmt.Sprintf("Checking %v at index %d against target %v", s.vals[i], i, s.target),
		step.Params{key: i, "val": s.vals[i], "target": s.target})
}

// found records the hit at index i and the completion step.
func (s *searcher) found(i int) step.Trace {
	s.emit(step.ActionFound, step.Elems(i),
		fmt.Sprintf("Target %v found at index %d", s.target, i),
		step.Params{"index": i, "val": s.vals[i], "target": s.target})
	s.emit(step.ActionComplete, nil, "Search complete",
		step.Params{"found": true, "index": i, "target": s.target})
	return s.rec.Trace()
}

// notFound records the miss and the completion step.
func (s *searcher) notFound() step.Trace {
	s.emit(step.ActionNotFound, nil,
		fmt.Sprintf("Target %v not found", s.target),
		step.Params{"target": s.target})
	s.emit(step.ActionComplete, nil, "Search complete",
		step.Params{"found": false, "index": -1, "target": s.target})
	return s.rec.Trace()
}

// narrow records an interval shrink after probing index at. Left means the
// target lies below vals[at].
func (s *searcher) narrow(left bool, at, low, high int, key string) {
	a, side := step.ActionNarrowRight, "right"
	if left {
		a, side = step.ActionNarrowLeft, "left"
	}
	s.emit(a, step.Elems(at),
		fmt.Sprintf("%v %s %v, searching %s half [%d..%d]", s.vals[at], cmpSymbol(left), s.target, side, low, high),
		step.Params{key: at, "val": s.vals[at], "target": s.target, "low": low, "high": high})
}

func cmpSymbol(left bool) string {
	if left {
		return ">"
	}
	return "<"
}

// binary runs a bounded binary search over [low, high] and finishes the trace.
func (s *searcher) binary(low, high int) step.Trace {
	for low <= high {
		mid := low + (high-low)/2
		s.emit(step.ActionMidpoint, step.Elems(mid),
			fmt.Sprintf("Midpoint of [%d..%d] is index %d", low, high, mid),
			step.Params{"mid": mid, "val": s.vals[mid], "low": low, "high": high})
		s.compare(mid, "mid")

		switch {
		case s.vals[mid] == s.target:
			return s.found(mid)
		case s.target < s.vals[mid]:
			high = mid - 1
			s.narrow(true, mid, low, high, "mid")
		default:
			low = mid + 1
			s.narrow(false, mid, low, high, "mid")
		}
	}
	return s.notFound()
}

func log2Hint(n int) int {
	h := 8
	for n > 0 {
		h += 4
		n >>= 1
	}
	return h
}
