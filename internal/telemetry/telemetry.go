// Package telemetry makes the catalog spans and the Prometheus collectors
// visible from a short-lived CLI process: spans are pretty-printed by a
// stdout exporter and metrics are dumped in the text exposition format.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "algorace"

// MetricPrefix selects the collectors WriteMetrics dumps.
const MetricPrefix = "algotrace_"

// ErrNilWriter is returned when Init or WriteMetrics get no destination.
var ErrNilWriter = errors.New("telemetry: writer is nil")

// Init installs a global TracerProvider exporting every span to w. The
// returned shutdown flushes pending spans and must be called before exit.
func Init(w io.Writer, version string) (shutdown func(context.Context) error, err error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// WriteMetrics encodes the algotrace_* families gathered from g to w in the
// Prometheus text format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	if w == nil {
		return ErrNilWriter
	}
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), MetricPrefix) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
