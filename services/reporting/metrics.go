package reporting

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	degradedSections   *prometheus.CounterVec
	aggregationLatency *prometheus.HistogramVec
	metricsOnce        sync.Once
)

// InitPrometheusMetrics registers the reporting collectors on the default registry.
// Safe to call more than once.
func InitPrometheusMetrics() {
	metricsOnce.Do(func() {
		degradedSections = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "feauage",
				Subsystem: "dashboard",
				Name:      "degraded_sections_total",
				Help:      "Dashboard sub-aggregations that failed and were replaced by zero values.",
			},
			[]string{"section"},
		)
		aggregationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "feauage",
				Subsystem: "dashboard",
				Name:      "aggregation_duration_seconds",
				Help:      "Duration of each dashboard sub-aggregation in seconds.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"section"},
		)
		prometheus.MustRegister(degradedSections, aggregationLatency)
	})
}

func observeSection(section string, seconds float64, failed bool) {
	InitPrometheusMetrics()
	aggregationLatency.WithLabelValues(section).Observe(seconds)
	if failed {
		degradedSections.WithLabelValues(section).Inc()
	}
}
