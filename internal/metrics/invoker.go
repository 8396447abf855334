package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "invoker",
		Name:      "invocations_total",
		Help:      "Count of contract invocations by final status.",
	}, []string{"function", "status"})
	invocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "invoker",
		Name:      "invocation_duration_seconds",
		Help:      "Duration of contract invocations from build to final status.",
		Buckets:   []float64{.25, .5, 1, 2, 4, 6, 8, 10, 15, 20, 30, 60},
	}, []string{"function", "status"})
	invocationPolls = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "invoker",
		Name:      "invocation_polls",
		Help:      "Number of status polls per submitted invocation.",
		Buckets:   prometheus.LinearBuckets(0, 1, 11),
	}, []string{"function"})

	simulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "invoker",
		Name:      "simulations_total",
		Help:      "Count of read-only contract simulations.",
	}, []string{"function", "status"})
	simulationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "invoker",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of read-only contract simulations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"function", "status"})
)

// Invoker tracks contract invocation and simulation metrics.
type Invoker struct{}

// NewInvoker constructs an Invoker collector.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// ObserveInvoke records a finished invocation. status is the outcome status or "error".
func (m Invoker) ObserveInvoke(function, status string, polls int, started time.Time) {
	invocationsTotal.WithLabelValues(function, orUnknown(status)).Inc()
	invocationDuration.WithLabelValues(function, orUnknown(status)).Observe(time.Since(started).Seconds())
	if polls > 0 {
		invocationPolls.WithLabelValues(function).Observe(float64(polls))
	}
}

// ObserveSimulate records a read-only simulation.
func (m Invoker) ObserveSimulate(function string, err error, started time.Time) {
	status := statusOf(err)
	simulationsTotal.WithLabelValues(function, status).Inc()
	simulationDuration.WithLabelValues(function, status).Observe(time.Since(started).Seconds())
}
