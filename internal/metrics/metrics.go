package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "appgolf"

// Metrics holds the application's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ResultsSubmitted    prometheus.Counter
	LeaderboardsBuilt   *prometheus.CounterVec
	TournamentsFinal    prometheus.Counter
	CourseImports       *prometheus.CounterVec
}

// New registers every collector on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ResultsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_submitted_total",
			Help:      "Tournament results accepted.",
		}),
		LeaderboardsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboards_computed_total",
			Help:      "Tournament leaderboards computed by scoring mode.",
		}, []string{"mode"}),
		TournamentsFinal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tournaments_finalized_total",
			Help:      "Tournaments whose league points were awarded.",
		}),
		CourseImports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "course_imports_total",
			Help:      "Course scorecard imports by outcome.",
		}, []string{"outcome"}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
