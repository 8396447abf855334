package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http_gateway",
		Name:      "requests_total",
		Help:      "Count of gateway HTTP requests.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http_gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of gateway HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// HTTPGateway tracks metrics for the read-only HTTP gateway.
type HTTPGateway struct{}

// NewHTTPGateway constructs an HTTPGateway collector.
func NewHTTPGateway() *HTTPGateway {
	return &HTTPGateway{}
}

// ObserveRequest records a served request.
func (m HTTPGateway) ObserveRequest(route string, code int, started time.Time) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
}
