package step

import (
	"errors"
	"slices"
)

// Sentinel errors for trace validation and legacy decoding.
var (
	// ErrEmptyTrace indicates a trace with no steps.
	ErrEmptyTrace = errors.New("step: trace is empty")

	// ErrMissingStart indicates the first step is not tagged ActionStart.
	ErrMissingStart = errors.New("step: trace does not begin with start")

	// ErrBadTerminal indicates the completion step is missing, repeated,
	// or not the last step.
	ErrBadTerminal = errors.New("step: trace must end with exactly one complete step")

	// ErrUnknownAction indicates an action outside the vocabulary.
	ErrUnknownAction = errors.New("step: unknown action")

	// ErrLegacyShape indicates a legacy tuple whose positions hold the wrong types.
	ErrLegacyShape = errors.New("step: malformed legacy tuple")
)

// Pair is an ordered pair of identifiers: two array indices or an edge A→B.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Params carries the operands of a Step. Values are int, float64, bool,
// string, []int or []float64.
type Params map[string]any

// Int returns the integer stored at key.
func (p Params) Int(key string) (int, bool) {
	v, ok := p[key].(int)
	return v, ok
}

// Float returns the number stored at key; integers are widened.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the boolean stored at key.
func (p Params) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

// String returns the string stored at key.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Clone returns a deep copy of p. Slice values are copied.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	out := make(Params, len(p))
	for k, v := range p {
		switch s := v.(type) {
		case []int:
			out[k] = slices.Clone(s)
		case []float64:
			out[k] = slices.Clone(s)
		default:
			out[k] = v
		}
	}
	return out
}

// Step is one immutable record of algorithmic progress.
//
// Values and Display are only set by sorting generators. Display is nil
// unless the caller tracked a parallel display array.
type Step struct {
	Elements  []int     `json:"elements"`
	Relations []Pair    `json:"relations"`
	Message   string    `json:"message"`
	Action    Action    `json:"action"`
	Params    Params    `json:"params"`
	Values    []float64 `json:"values,omitempty"`
	Display   []float64 `json:"display,omitempty"`
}

// Trace is the ordered step sequence produced by one generator call.
type Trace []Step

// Len returns the number of steps.
func (t Trace) Len() int { return len(t) }

// Last returns the final step. It panics on an empty trace.
func (t Trace) Last() Step { return t[len(t)-1] }

// Count returns how many steps carry action a.
func (t Trace) Count(a Action) int {
	n := 0
	for i := range t {
		if t[i].Action == a {
			n++
		}
	}
	return n
}

// Find returns the index of the first step tagged a, or -1.
func (t Trace) Find(a Action) int {
	for i := range t {
		if t[i].Action == a {
			return i
		}
	}
	return -1
}

// Actions returns the action sequence of t.
func (t Trace) Actions() []Action {
	out := make([]Action, len(t))
	for i := range t {
		out[i] = t[i].Action
	}
	return out
}

// Elements returns the set of identifiers highlighted anywhere in t,
// in first-seen order.
func (t Trace) Elements() []int {
	seen := make(map[int]bool)
	var out []int
	for i := range t {
		for _, id := range t[i].Elements {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
