package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/usecase"
)

// RemarkMetrics exports ledger activity to Prometheus.
type RemarkMetrics struct {
	operations *prometheus.CounterVec
	affected   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ usecase.RemarkRecorder = (*RemarkMetrics)(nil)

// NewRemarkMetrics creates the collectors and registers them with reg.
func NewRemarkMetrics(reg prometheus.Registerer) *RemarkMetrics {
	m := &RemarkMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "remarks",
				Name:      "operations_total",
				Help:      "Number of ledger mutations by operation and kind",
			},
			[]string{"operation", "kind"},
		),
		affected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "remarks",
				Name:      "affected_rows_total",
				Help:      "Number of remark rows written or removed by ledger mutations",
			},
			[]string{"operation"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "remarks",
				Name:      "operation_duration_seconds",
				Help:      "Latency of ledger mutations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.operations, m.affected, m.duration)
	return m
}

// ObserveRemark records one mutation.
func (m *RemarkMetrics) ObserveRemark(operation string, kind entity.RemarkKind, affected int64, took time.Duration) {
	m.operations.WithLabelValues(operation, kind.String()).Inc()
	if affected > 0 {
		m.affected.WithLabelValues(operation).Add(float64(affected))
	}
	m.duration.WithLabelValues(operation).Observe(took.Seconds())
}
