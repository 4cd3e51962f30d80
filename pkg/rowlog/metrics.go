package rowlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the row log. Create at most one
// per process; promauto registers with the default registry.
type Metrics struct {
	rowsAppended  prometheus.Counter
	bytesAppended prometheus.Counter
	rotations     prometheus.Counter
}

// NewMetrics creates and registers the row log metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		rowsAppended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mimir_rowlog_rows_appended_total",
			Help: "Total number of rows appended to the log",
		}),
		bytesAppended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mimir_rowlog_bytes_appended_total",
			Help: "Total number of bytes appended to the log, framing included",
		}),
		rotations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mimir_rowlog_segment_rotations_total",
			Help: "Total number of segment rotations",
		}),
	}
}

// RecordAppend records one appended frame of the given encoded size.
func (m *Metrics) RecordAppend(bytes int) {
	m.rowsAppended.Inc()
	m.bytesAppended.Add(float64(bytes))
}

// RecordRotation records one segment rotation.
func (m *Metrics) RecordRotation() {
	m.rotations.Inc()
}
