package step

import (
	"fmt"
	"math"
)

// LegacyTuple is the fixed-position step shape older consumers expect:
// [indices, message, actionKind, params].
type LegacyTuple [4]any

// legacyAliases maps the camel-case tags older consumers used onto the
// canonical vocabulary.
var legacyAliases = map[string]Action{
	"checking":          ActionCompare,
	"comparison":        ActionCompare,
	"outerLoop":         ActionOuterLoop,
	"noSwap":            ActionNoSwap,
	"newMin":            ActionNewMin,
	"partitioned":       ActionPartition,
	"narrowLeft":        ActionNarrowLeft,
	"narrowRight":       ActionNarrowRight,
	"notFound":          ActionNotFound,
	"linear":            ActionLinearScan,
	"linearSearch":      ActionLinearScan,
	"exponential-check": ActionBoundCheck,
}

// ToLegacy flattens s into a LegacyTuple. Relations, Values and Display
// have no slot in the tuple and are dropped.
func ToLegacy(s Step) LegacyTuple {
	idx := make([]int, len(s.Elements))
	copy(idx, s.Elements)
	return LegacyTuple{idx, s.Message, string(s.Action), map[string]any(s.Params.Clone())}
}

// FromLegacy decodes a LegacyTuple. Indices may arrive as []int or as a
// JSON-decoded []any of whole numbers; camel-case action tags are accepted.
func FromLegacy(t LegacyTuple) (Step, error) {
	idx, err := legacyIndices(t[0])
	if err != nil {
		return Step{}, err
	}
	msg, ok := t[1].(string)
	if !ok && t[1] != nil {
		return Step{}, fmt.Errorf("%w: message is %T", ErrLegacyShape, t[1])
	}
	tag, ok := t[2].(string)
	if !ok {
		return Step{}, fmt.Errorf("%w: action is %T", ErrLegacyShape, t[2])
	}
	action := Action(tag)
	if alias, found := legacyAliases[tag]; found {
		action = alias
	}
	if !action.Valid() {
		return Step{}, fmt.Errorf("%w %q", ErrUnknownAction, tag)
	}

	var params Params
	switch p := t[3].(type) {
	case nil:
		params = Params{}
	case Params:
		params = p.Clone()
	case map[string]any:
		params = Params(p).Clone()
	default:
		return Step{}, fmt.Errorf("%w: params is %T", ErrLegacyShape, t[3])
	}

	return Step{
		Elements:  idx,
		Relations: []Pair{},
		Message:   msg,
		Action:    action,
		Params:    params,
	}, nil
}

// ToLegacyTrace converts a whole trace.
func ToLegacyTrace(t Trace) []LegacyTuple {
	out := make([]LegacyTuple, len(t))
	for i := range t {
		out[i] = ToLegacy(t[i])
	}
	return out
}

func legacyIndices(v any) ([]int, error) {
	switch xs := v.(type) {
	case nil:
		return []int{}, nil
	case []int:
		out := make([]int, len(xs))
		copy(out, xs)
		return out, nil
	case []any:
		out := make([]int, 0, len(xs))
		for _, x := range xs {
			switch n := x.(type) {
			case int:
				out = append(out, n)
			case float64:
				if n != math.Trunc(n) {
					return nil, fmt.Errorf("%w: fractional index %v", ErrLegacyShape, n)
				}
				out = append(out, int(n))
			default:
				return nil, fmt.Errorf("%w: index is %T", ErrLegacyShape, x)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: indices is %T", ErrLegacyShape, v)
}
