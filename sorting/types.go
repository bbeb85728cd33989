package sorting

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algotrace/step"
)

// Sentinel errors for sorting generators.
var (
	// ErrInvalidInput is returned when a value is NaN or infinite.
	ErrInvalidInput = errors.New("sorting: value is not a finite number")

	// ErrDisplayLength is returned when display values and sort keys differ in length.
	ErrDisplayLength = errors.New("sorting: display values length mismatch")
)

// Option configures a sorting generator.
type Option func(*Options)

// Options holds generator settings. Use DefaultOptions and Option funcs.
type Options struct {
	// Display, when non-nil, is a parallel array of labels moved together
	// with the sort keys.
	Display []float64

	err error
}

// DefaultOptions returns Options with no display tracking.
func DefaultOptions() Options {
	return Options{}
}

// WithDisplayValues tracks display alongside the sort keys. The slice is
// copied when the generator runs.
func WithDisplayValues(display []float64) Option {
	return func(o *Options) {
		if display == nil {
			return
		}
		for i, v := range display {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				o.err = fmt.Errorf("%w: display[%d] = %v", ErrInvalidInput, i, v)
				return
			}
		}
		o.Display = display
	}
}

// sorter holds the working copy of one sort run and its recorder.
type sorter struct {
	vals []float64
	disp []float64 // nil unless display values are tracked
	rec  *step.Recorder
}

// newSorter validates the input, applies options and copies the slices.
// hint maps the input length to an expected step count.
func newSorter(values []float64, hint func(n int) int, opts []Option) (*sorter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: values[%d] = %v", ErrInvalidInput, i, v)
		}
	}
	if o.Display != nil && len(o.Display) != len(values) {
		return nil, fmt.Errorf("%w: %d values, %d display", ErrDisplayLength, len(values), len(o.Display))
	}

	n := len(values)
	s := &sorter{
		vals: slices.Clone(values),
		rec:  step.NewRecorder(hint(n)),
	}
	if s.vals == nil {
		s.vals = []float64{}
	}
	if o.Display != nil {
		s.disp = slices.Clone(o.Display)
	}
	return s, nil
}

// label returns what params report for index i.
func (s *sorter) label(i int) float64 {
	if s.disp != nil {
		return s.disp[i]
	}
	return s.vals[i]
}

func (s *sorter) swap(i, j int) {
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
	if s.disp != nil {
		s.disp[i], s.disp[j] = s.disp[j], s.disp[i]
	}
}

// emit records a step with the current array snapshot.
func (s *sorter) emit(a step.Action, elems []int, rel []step.Pair, msg string, p step.Params) {
	s.rec.Emit(step.Step{
		Elements:  elems,
		Relations: rel,
		Message:   msg,
		Action:    a,
		Params:    p,
		Values:    s.vals,
		Display:   s.disp,
	})
}

func (s *sorter) start(name string) {
	s.emit(step.ActionStart, nil, nil,
		fmt.Sprintf("Starting %s on %d elements", name, len(s.vals)),
		step.Params{"n": len(s.vals)})
}

// compare records a comparison between indices i and j.
func (s *sorter) compare(i, j int, p step.Params) {
	s.emit(step.ActionCompare, step.Elems(i, j), nil,
		fmt.Sprintf("Comparing %v at index %d with %v at index %d", p["val1"], i, p["val2"], j), p)
}

// finish records the completion step and hands the trace over.
func (s *sorter) finish(name string) step.Trace {
	all := make([]int, len(s.vals))
	for i := range all {
		all[i] = i
	}
	s.emit(step.ActionComplete, all, nil,
		fmt.Sprintf("%s complete", name),
		step.Params{"n": len(s.vals)})
	return s.rec.Trace()
}
