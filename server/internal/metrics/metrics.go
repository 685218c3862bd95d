package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "fittracker"
	subsystem = "server"
)

// Metrics holds the server collectors.
type Metrics struct {
	summaries       *prometheus.CounterVec
	errors          *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	streamClients   prometheus.Gauge
}

// New creates the collectors and registers them on reg.
// It panics if any collector is already registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "summaries_total",
			Help:      "Number of workout summaries computed, labeled by kind.",
		}, []string{"kind"}),

		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Number of rejected calculation requests, labeled by error code.",
		}, []string{"code"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"route", "code", "method"}),

		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stream_clients",
			Help:      "Number of connected WebSocket stream clients.",
		}),
	}
	reg.MustRegister(m.summaries, m.errors, m.requestDuration, m.streamClients)
	return m
}

// ObserveSummary counts one successful calculation of the given kind.
func (m *Metrics) ObserveSummary(kind string) {
	m.summaries.WithLabelValues(kind).Inc()
}

// ObserveError counts one rejected calculation with the given error code.
func (m *Metrics) ObserveError(code string) {
	m.errors.WithLabelValues(code).Inc()
}

// SetStreamClients records the current number of stream clients.
func (m *Metrics) SetStreamClients(n int) {
	m.streamClients.Set(float64(n))
}

// Instrument wraps next so that its latency is observed under route.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	obs := m.requestDuration.MustCurryWith(prometheus.Labels{"route": route})
	return promhttp.InstrumentHandlerDuration(obs, next)
}

// Handler returns the exposition handler for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
