// Package catalog is the fixed table of traceable algorithms and the single
// entry point that turns an algorithm name and an Input into a validated
// step trace.
//
//	tr, err := catalog.Generate(ctx, "quick", catalog.Input{Values: vals})
//
// Names are matched case-insensitively against both the display name
// ("Quick Sort") and the short key ("quick").
//
// Generate opens an OpenTelemetry span named "Catalog.Generate", records
// Prometheus metrics through internal/metrics and checks every trace with
// step.Validate before returning it. GenerateAll runs several generators
// concurrently on the same input.
package catalog
