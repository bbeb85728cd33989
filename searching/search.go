package searching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algotrace/step"
)

// Linear scans values left to right. Each index gets a "compare" step and,
// unless it is the last one, a "continue" step on a miss.
func Linear(values []float64, target float64) (step.Trace, error) {
	s, err := newSearcher(values, target, 2*len(values)+3)
	if err != nil {
		return nil, err
	}
	n := len(s.vals)
	s.emit(step.ActionStart, nil,
		fmt.Sprintf("Starting linear search for %v", target),
		step.Params{"target": target, "length": n})

	for i := 0; i < n; i++ {
		s.compare(i, "i")
		if s.vals[i] == target {
			return s.found(i), nil
		}
		if i < n-1 {
			s.emit(step.ActionContinue, step.Elems(i),
				fmt.Sprintf("Index %d is not the target, moving on", i),
				step.Params{"i": i, "val": s.vals[i], "target": target, "next": i + 1})
		}
	}

	return s.notFound(), nil
}

// Binary searches ascending values by halving [low, high]. Every iteration
// emits "midpoint" then "compare", followed by "found" or a narrow step.
func Binary(values []float64, target float64) (step.Trace, error) {
	s, err := newSearcher(values, target, log2Hint(len(values)))
	if err != nil {
		return nil, err
	}
	n := len(s.vals)
	s.emit(step.ActionStart, nil,
		fmt.Sprintf("Starting binary search for %v over [0..%d]", target, n-1),
		step.Params{"target": target, "length": n, "low": 0, "high": n - 1})

	return s.binary(0, n-1), nil
}

// Jump probes the last index of each block of size floor(sqrt(n)) until it
// reaches a block whose last element is not less than the target, then scans
// that block linearly.
func Jump(values []float64, target float64) (step.Trace, error) {
	n := len(values)
	s, err := newSearcher(values, target, 3*int(math.Sqrt(float64(n)))+8)
	if err != nil {
		return nil, err
	}
	blockSize := int(math.Sqrt(float64(n)))
	s.emit(step.ActionStart, nil,
		fmt.Sprintf("Starting jump search for %v with block size %d", target, blockSize),
		step.Params{"target": target, "length": n, "step": blockSize})
	if n == 0 {
		return s.notFound(), nil
	}

	prev := 0
	end := min(blockSize, n) - 1
	s.jump(end, prev, blockSize)
	for s.vals[end] < target {
		prev = end + 1
		if prev >= n {
			return s.notFound(), nil
		}
		end = min(end+blockSize, n-1)
		s.jump(end, prev, blockSize)
	}

	s.emit(step.ActionLinearScan, step.Elems(prev),
		fmt.Sprintf("Scanning block [%d..%d]", prev, end),
		step.Params{"start": prev, "end": end, "target": target})
	for i := prev; i <= end; i++ {
		s.compare(i, "i")
		if s.vals[i] == target {
			return s.found(i), nil
		}
		if i < end {
			s.emit(step.ActionContinue, step.Elems(i),
				fmt.Sprintf("Index %d is not the target, moving on", i),
				step.Params{"i": i, "val": s.vals[i], "target": target, "next": i + 1})
		}
	}

	return s.notFound(), nil
}

func (s *searcher) jump(index, prev, size int) {
	s.emit(step.ActionJump, step.Elems(index),
		fmt.Sprintf("Jumped to index %d (value %v)", index, s.vals[index]),
		step.Params{"index": index, "val": s.vals[index], "step": size, "prev": prev})
}

// Interpolation estimates the probe position from the values at the interval
// ends. The loop runs while low <= high and arr[low] <= target <= arr[high].
// When the interval has a single element or arr[high] == arr[low] it degrades
// to one comparison at low.
func Interpolation(values []float64, target float64) (step.Trace, error) {
	s, err := newSearcher(values, target, log2Hint(len(values))+8)
	if err != nil {
		return nil, err
	}
	n := len(s.vals)
	low, high := 0, n-1
	s.emit(step.ActionStart, nil,
		fmt.Sprintf("Starting interpolation search for %v over [0..%d]", target, high),
		step.Params{"target": target, "length": n, "low": low, "high": high})

	for low <= high && target >= s.vals[low] && target <= s.vals[high] {
		if low == high || s.vals[high] == s.vals[low] {
			s.compare(low, "pos")
			if s.vals[low] == target {
				return s.found(low), nil
			}
			return s.notFound(), nil
		}

		ratio := (target - s.vals[low]) * float64(high-low) / (s.vals[high] - s.vals[low])
		pos := low + int(math.Floor(ratio))
		pos = max(low, min(pos, high))

		s.emit(step.ActionPosition, step.Elems(pos),
			fmt.Sprintf("Estimated position %d within [%d..%d]", pos, low, high),
			step.Params{"pos": pos, "val": s.vals[pos], "low": low, "high": high, "target": target})
		s.compare(pos, "pos")

		switch {
		case s.vals[pos] == target:
			return s.found(pos), nil
		case s.vals[pos] > target:
			high = pos - 1
			s.narrow(true, pos, low, high, "pos")
		default:
			low = pos + 1
			s.narrow(false, pos, low, high, "pos")
		}
	}

	return s.notFound(), nil
}

// Exponential checks index 0, then doubles a bound i while arr[i] <= target
// ("bound-check" then "double"), fixes the bracket [i/2, min(i, n-1)] with
// "set-range", and finishes with a binary search inside it.
func Exponential(values []float64, target float64) (step.Trace, error) {
	s, err := newSearcher(values, target, 2*log2Hint(len(values)))
	if err != nil {
		return nil, err
	}
	n := len(s.vals)
	s.emit(step.ActionStart, nil,
		fmt.Sprintf("Starting exponential search for %v", target),
		step.Params{"target": target, "length": n})
	if n == 0 {
		return s.notFound(), nil
	}

	s.compare(0, "index")
	if s.vals[0] == target {
		return s.found(0), nil
	}

	i := 1
	for i < n && s.vals[i] <= target {
		s.emit(step.ActionBoundCheck, step.Elems(i),
			fmt.Sprintf("Checking bound at index %d (value %v)", i, s.vals[i]),
			step.Params{"index": i, "val": s.vals[i], "target": target})
		if s.vals[i] == target {
			return s.found(i), nil
		}
		prev := i
		i *= 2
		s.emit(step.ActionDouble, nil,
			fmt.Sprintf("Doubling bound from %d to %d", prev, min(i, n-1)),
			step.Params{"prev": prev, "next": min(i, n-1)})
	}

	low, high := i/2, min(i, n-1)
	s.emit(step.ActionSetRange, nil,
		fmt.Sprintf("Target bracketed in [%d..%d]", low, high),
		step.Params{"low": low, "high": high})

	return s.binary(low, high), nil
}
