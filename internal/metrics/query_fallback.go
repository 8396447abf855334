package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "queries",
	Name:      "fallbacks_total",
	Help:      "Count of read queries that failed and were rendered as empty defaults.",
}, []string{"query"})

// QueryFallback counts queries answered with a default value after an error.
type QueryFallback struct{}

// NewQueryFallback constructs a QueryFallback collector.
func NewQueryFallback() *QueryFallback {
	return &QueryFallback{}
}

// ObserveFallback records one fallback for query.
func (m QueryFallback) ObserveFallback(query string) {
	queryFallbacksTotal.WithLabelValues(query).Inc()
}
