// Package searching produces step traces for five array search algorithms:
// Linear, Binary, Jump, Interpolation and Exponential.
//
// Every trace has the same frame:
//
//	start{target, ...search-space}
//	one or more probe steps (compare, midpoint, position, jump, bound-check)
//	found{index} | not-found
//	complete{found, index, target}
//
// A "found" step is always immediately followed by "complete"; no probe ever
// follows it.
//
// Ordering
//
//	Linear works on any input. Binary, Jump, Interpolation and Exponential
//	assume ascending input; on unsorted input they still terminate with a
//	well-formed trace but the answer is meaningless. Sorting first is the
//	caller's job (catalog.Input.AutoSort does it for the catalog).
//
// Narrowing
//
//	Binary, Interpolation and the binary phase of Exponential emit
//	"narrow-left"/"narrow-right" carrying the new [low, high] bounds each time
//	the interval shrinks. Jump emits "jump" per block boundary and a single
//	"linear-scan" when it enters the final block. Exponential emits "double"
//	whenever its probe index doubles and one "set-range" before its binary
//	phase.
//
// Numeric edge cases
//
//	Interpolation guards arr[high] == arr[low] by degrading to a single
//	comparison at low, and clamps every computed position into [low, high].
//	Neither case is an error.
//
// Errors
//
//   - ErrInvalidInput if an element or the target is NaN or ±Inf.
//
// An empty array is valid input: the trace is start, not-found, complete.
//
// Complexity (n = len(values))
//
//   - Linear O(n), Jump O(√n), Binary and Exponential O(log n),
//     Interpolation O(log log n) on uniform data, O(n) worst case.
package searching
