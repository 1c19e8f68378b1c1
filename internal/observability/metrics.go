package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricNamespace = "complexityscope"

// Metrics holds the Prometheus instruments the engine exposes about its
// own runs: how many modules it analysed, how long a project analysis
// took, and the core size of the last dependency graph it computed.
type Metrics struct {
	registry *prometheus.Registry

	ModulesAnalysed  prometheus.Counter
	AnalysisDuration prometheus.Histogram
	CoreSize         prometheus.Gauge
}

// NewMetrics builds a Metrics instance registered to its own private
// registry, so repeated calls (e.g. in tests) never collide with a
// previous registration.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ModulesAnalysed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "modules_analysed_total",
			Help:      "Total number of modules analysed.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall-clock duration of a project analysis run.",
			Buckets:   prometheus.DefBuckets,
		}),
		CoreSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "core_size_percent",
			Help:      "Core size percentage from the most recent project analysis.",
		}),
	}

	registry.MustRegister(m.ModulesAnalysed, m.AnalysisDuration, m.CoreSize)

	return m
}

// Handler returns an http.Handler serving these metrics in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
