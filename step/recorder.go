package step

import "slices"

// Recorder is the append-only buffer a generator writes its steps into.
// The zero value is ready to use.
type Recorder struct {
	steps Trace
}

// NewRecorder returns a Recorder with room for sizeHint steps.
func NewRecorder(sizeHint int) *Recorder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Recorder{steps: make(Trace, 0, sizeHint)}
}

// Emit appends s after copying every slice and the params map it references.
func (r *Recorder) Emit(s Step) {
	s.Elements = cloneOrEmpty(s.Elements)
	s.Relations = cloneOrEmpty(s.Relations)
	s.Params = s.Params.Clone()
	if s.Values != nil {
		s.Values = slices.Clone(s.Values)
	}
	if s.Display != nil {
		s.Display = slices.Clone(s.Display)
	}
	r.steps = append(r.steps, s)
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Trace hands the recorded steps to the caller. The Recorder must not be
// used afterwards.
func (r *Recorder) Trace() Trace {
	t := r.steps
	r.steps = nil
	return t
}

// Elems is shorthand for building an Elements slice.
func Elems(ids ...int) []int { return ids }

// Rel is shorthand for a single-relation slice.
func Rel(a, b int) []Pair { return []Pair{{A: a, B: b}} }

func cloneOrEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return []T{}
	}
	return slices.Clone(s)
}
