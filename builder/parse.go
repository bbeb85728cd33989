package builder

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxValues is the largest array ParseValues accepts.
const MaxValues = 100

const (
	methodParseValues      = "ParseValues"
	methodParseSearchInput = "ParseSearchInput"
)

// ParseValues reads numbers separated by commas and/or whitespace, e.g.
// "5, 2 9,1". Brackets are tolerated so a JSON-looking array also parses.
func ParseValues(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '[' || r == ']' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, builderErrorf(methodParseValues, ErrEmptyInput, "%q", text)
	}
	if len(fields) > MaxValues {
		return nil, builderErrorf(methodParseValues, ErrTooManyValues, "%d > %d", len(fields), MaxValues)
	}

	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, builderErrorf(methodParseValues, ErrNotANumber, "token %d %q", i, f)
		}
		out[i] = v
	}
	return out, nil
}

// ParseSearchInput reads "[values] | target", where values is a non-empty
// JSON array of numbers and target a JSON number. The values are returned
// as given; sorting is the caller's choice.
func ParseSearchInput(text string) ([]float64, float64, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 2 {
		return nil, 0, builderErrorf(methodParseSearchInput, ErrBadSearchInput, "%q", text)
	}

	var vals []float64
	if err := json.Unmarshal([]byte(strings.TrimSpace(parts[0])), &vals); err != nil {
		return nil, 0, builderErrorf(methodParseSearchInput, ErrNotANumber, "array: %v", err)
	}
	if len(vals) == 0 {
		return nil, 0, builderErrorf(methodParseSearchInput, ErrEmptyInput, "array is empty")
	}
	if len(vals) > MaxValues {
		return nil, 0, builderErrorf(methodParseSearchInput, ErrTooManyValues, "%d > %d", len(vals), MaxValues)
	}

	var target float64
	if err := json.Unmarshal([]byte(strings.TrimSpace(parts[1])), &target); err != nil {
		return nil, 0, builderErrorf(methodParseSearchInput, ErrNotANumber, "target: %v", err)
	}
	return vals, target, nil
}
