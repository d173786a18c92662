package vector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder is a Recorder backed by Prometheus collectors.
type PrometheusRecorder struct {
	allocations      prometheus.Counter
	allocatedBytes   prometheus.Counter
	reservedBytes    prometheus.Gauge
	reallocations    prometheus.Counter
	allocationErrors prometheus.Counter
}

// NewPrometheusRecorder registers the vector collectors with reg.
// A nil reg creates unregistered collectors.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	return &PrometheusRecorder{
		allocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_buffer_allocations_total",
			Help: "Total number of vector buffers allocated.",
		}),
		allocatedBytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_buffer_allocated_bytes_total",
			Help: "Total bytes of vector buffers allocated.",
		}),
		reservedBytes: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "vector_buffer_reserved_bytes",
			Help: "Bytes currently held by live vector buffers.",
		}),
		reallocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_reallocations_total",
			Help: "Total number of times a vector adopted a larger buffer.",
		}),
		allocationErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "vector_allocation_failures_total",
			Help: "Total number of failed vector buffer allocations.",
		}),
	}
}

func (r *PrometheusRecorder) Allocated(bytes int64) {
	r.allocations.Inc()
	r.allocatedBytes.Add(float64(bytes))
	r.reservedBytes.Add(float64(bytes))
}

func (r *PrometheusRecorder) Released(bytes int64) {
	r.reservedBytes.Sub(float64(bytes))
}

func (r *PrometheusRecorder) Reallocated(_, _ int) {
	r.reallocations.Inc()
}

func (r *PrometheusRecorder) AllocationFailed() {
	r.allocationErrors.Inc()
}
