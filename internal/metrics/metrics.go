// Package metrics holds the Prometheus collectors shared by catalog and race.
// Collectors register on the default registry at init through promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "algotrace"

var (
	// TracesGenerated counts successful trace generations.
	// Labels: algorithm (catalog key), category (sorting, searching, graph)
	TracesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "traces_generated_total",
		Help:      "Total traces generated by algorithm",
	}, []string{"algorithm", "category"})

	// TraceSteps observes the length of every generated trace.
	// Labels: category
	TraceSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trace_steps",
		Help:      "Number of steps per generated trace",
		Buckets:   prometheus.ExponentialBuckets(4, 2, 12),
	}, []string{"category"})

	// GenerateErrors counts failed generations.
	// Labels: algorithm
	GenerateErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generate_errors_total",
		Help:      "Total trace generation failures by algorithm",
	}, []string{"algorithm"})

	// RacesStarted counts race sessions that entered Running.
	RacesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "races_started_total",
		Help:      "Total race sessions started",
	})

	// RaceCompletions counts participant completions by final rank.
	// Labels: rank (1-based)
	RaceCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "race_completions_total",
		Help:      "Total participant completions by rank",
	}, []string{"rank"})

	// RaceCompletionSeconds observes the completion instant of every participant.
	RaceCompletionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "race_completion_seconds",
		Help:      "Elapsed time from race start to participant completion",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
)

// ObserveGenerated records one successful generation of steps steps.
func ObserveGenerated(algorithm, category string, steps int) {
	TracesGenerated.WithLabelValues(algorithm, category).Inc()
	TraceSteps.WithLabelValues(category).Observe(float64(steps))
}

// ObserveCompletion records a participant finishing at rank after elapsed.
func ObserveCompletion(rank int, elapsed time.Duration) {
	RaceCompletions.WithLabelValues(strconv.Itoa(rank)).Inc()
	RaceCompletionSeconds.Observe(elapsed.Seconds())
}
