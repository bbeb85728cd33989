// Package step defines the shared data shape every trace generator in
// algotrace emits: one Step per unit of algorithmic progress, collected into
// an ordered, finite Trace.
//
// What
//
//   - Step carries highlighted elements (array indices or vertex ids),
//     highlighted relations (index pairs or edges), a human-readable message,
//     a closed Action tag and a Params map with the exact operands.
//   - Sorting steps additionally carry a full snapshot of the array being
//     sorted (Values) and, when tracked, the parallel display values.
//   - Trace is an ordered []Step with small query helpers.
//
// Guarantees
//
//   - A trace always starts with ActionStart and ends with exactly one
//     ActionComplete step. Validate checks this contract.
//   - Generators record steps through a Recorder, which copies every slice
//     it is handed, so no later mutation of working state can leak into a
//     step that was already emitted.
//
// Legacy boundary
//
// Older consumers speak a fixed-position tuple
// [indices, message, actionKind, params]. ToLegacy and FromLegacy are the
// single adapter for that shape; no generator produces it directly.
//
// Complexity
//
//   - Recording a step costs O(k) where k is the size of the slices copied.
//   - Validate is O(len(trace)).
package step
