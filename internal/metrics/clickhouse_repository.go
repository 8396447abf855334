package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// JournalStore labels metrics of the invocation journal tables.
const JournalStore = "journal"

var (
	clickhouseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "Count of ClickHouse operations by store.",
	}, []string{"store", "operation", "status"})
	clickhouseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse operations by store.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"store", "operation", "status"})
)

// ClickhouseRepository tracks ClickHouse operations of one store.
type ClickhouseRepository struct {
	store string
}

// NewClickhouseRepository creates a collector for the invocation journal store.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{store: JournalStore}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	clickhouseOperationsTotal.WithLabelValues(m.store, operation, status).Inc()
	clickhouseOperationDuration.WithLabelValues(m.store, operation, status).Observe(time.Since(started).Seconds())
}
