package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algotrace/internal/metrics"
	"github.com/katalvlaran/algotrace/step"
)

var tracer = otel.Tracer("algotrace.catalog")

// Generate runs the algorithm named nameOrKey on in and returns its
// validated trace.
func Generate(ctx context.Context, nameOrKey string, in Input) (step.Trace, error) {
	alg, err := Lookup(nameOrKey)
	if err != nil {
		metrics.GenerateErrors.WithLabelValues("unknown").Inc()
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "Catalog.Generate",
		trace.WithAttributes(
			attribute.String("algorithm", alg.Key),
			attribute.String("category", string(alg.Category)),
		),
	)
	defer span.End()

	tr, err := alg.run(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.GenerateErrors.WithLabelValues(alg.Key).Inc()
		slog.Debug("trace generation failed", "algorithm", alg.Key, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("steps", len(tr)))
	metrics.ObserveGenerated(alg.Key, string(alg.Category), len(tr))
	slog.Debug("trace generated", "algorithm", alg.Key, "steps", len(tr))
	return tr, nil
}

// run checks in against the category, prepares it and calls the generator.
func (a Algorithm) run(ctx context.Context, in Input) (step.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch a.Category {
	case Graph:
		if in.Graph == nil {
			return nil, fmt.Errorf("%w: %s requires a graph", ErrInvalidInput, a.Name)
		}
	case Searching:
		if a.NeedsSorted && in.AutoSort {
			in.Values = slices.Clone(in.Values)
			slices.Sort(in.Values)
		}
	}

	tr, err := a.gen(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Key, err)
	}
	if err := step.Validate(tr); err != nil {
		return nil, fmt.Errorf("%s: malformed trace: %w", a.Key, err)
	}
	return tr, nil
}

// GenerateAll runs every named algorithm on in concurrently. The result is
// keyed by the names as given; the first failure cancels the rest.
func GenerateAll(ctx context.Context, names []string, in Input) (map[string]step.Trace, error) {
	traces := make([]step.Trace, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			tr, err := Generate(gctx, name, in)
			if err != nil {
				return err
			}
			traces[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]step.Trace, len(names))
	for i, name := range names {
		out[name] = traces[i]
	}
	return out, nil
}
