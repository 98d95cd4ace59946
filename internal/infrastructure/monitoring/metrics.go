package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the launcher daemon.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Query engine metrics
	SearchDuration prometheus.Histogram
	SearchResults  prometheus.Histogram
	SearchesTotal  prometheus.Counter

	// Execution metrics, labelled by candidate kind and outcome.
	Executions *prometheus.CounterVec

	// Provider metrics
	ClipboardPolls prometheus.Counter
	Reloads        prometheus.Counter
	IndexedApps    prometheus.Gauge

	startTime time.Time
}

// NewMetrics creates a metrics collector registered on the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lumen_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lumen_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),

		SearchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lumen_search_duration_seconds",
				Help:    "Query evaluation duration in seconds",
				Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
			},
		),
		SearchResults: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lumen_search_results",
				Help:    "Number of results returned per search",
				Buckets: []float64{0, 1, 2, 4, 8, 16},
			},
		),
		SearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lumen_searches_total",
				Help: "Total number of searches evaluated",
			},
		),

		Executions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lumen_executions_total",
				Help: "Total number of candidate executions",
			},
			[]string{"kind", "outcome"},
		),

		ClipboardPolls: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lumen_clipboard_polls_total",
				Help: "Total number of clipboard polls",
			},
		),
		Reloads: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lumen_reloads_total",
				Help: "Total number of index reloads",
			},
		),
		IndexedApps: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lumen_indexed_apps",
				Help: "Number of applications in the index",
			},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSearch records one evaluated search.
func (m *Metrics) RecordSearch(duration time.Duration, results int) {
	m.SearchesTotal.Inc()
	m.SearchDuration.Observe(duration.Seconds())
	m.SearchResults.Observe(float64(results))
}

// RecordExecution records one candidate execution.
func (m *Metrics) RecordExecution(kind, outcome string) {
	m.Executions.WithLabelValues(kind, outcome).Inc()
}

// Uptime reports how long the collector has been alive.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
