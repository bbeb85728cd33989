package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a vertex count below a topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic builder without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph rejected by core.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates a negative length or an inverted value range.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrEmptyInput indicates text with no values in it.
var ErrEmptyInput = errors.New("builder: input has no values")

// ErrNotANumber indicates a token that does not parse as a finite number.
var ErrNotANumber = errors.New("builder: not a number")

// ErrTooManyValues indicates more than MaxValues parsed values.
var ErrTooManyValues = errors.New("builder: too many values")

// ErrBadSearchInput indicates search text not shaped "[array] | target".
var ErrBadSearchInput = errors.New("builder: search input must be \"[values] | target\"")

// builderErrorf prefixes a sentinel-wrapping message with the method name.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
