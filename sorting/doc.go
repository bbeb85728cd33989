// Package sorting instruments five classic comparison sorts so that every
// decision they make is externalized as a step.Step.
//
// What
//
//   - Bubble, Selection, Insertion, Merge and Quick each take a []float64
//     and return a step.Trace that begins with "start" and ends with a single
//     "complete" step whose Values snapshot is the input sorted ascending.
//   - Every comparison the textbook algorithm performs becomes a "compare"
//     step carrying both indices and both values (val1, val2).
//   - Every data movement becomes a "swap" (pairwise exchange), a "shift"
//     (insertion sort) or a "place" (merge sort) step.
//   - Narration steps mark structure: "outer-loop" per pass for the quadratic
//     sorts, "divide"/"subarrays"/"merge" per split for merge sort, and
//     "divide"/"pivot"/"place-pivot"/"partition" per level for quick sort.
//
// Snapshots
//
//	Sorting is in place, so every step carries a full copy of the working
//	array (Values). WithDisplayValues tracks a parallel array of labels that
//	moves with the keys (Display); val/val1/val2 params then report labels.
//
// Determinism
//
//	Generators are pure: no randomness, no shared state, no mutation of the
//	caller's slice. Quick sort uses the last element as pivot and a strict
//	"<" partition; merge sort takes the left element on ties (stable).
//
// Complexity
//
//   - Bubble, Selection, Insertion: O(n²) comparisons, O(n²) steps.
//   - Merge: O(n log n) comparisons.
//   - Quick: O(n log n) expected, O(n²) worst case (sorted input).
//   - Every step copies the array, so memory is O(steps · n).
//
// Errors
//
//   - ErrInvalidInput  if a value (or display value) is NaN or ±Inf.
//   - ErrDisplayLength if WithDisplayValues gets a slice of a different length.
package sorting
