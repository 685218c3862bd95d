package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittracker/fittracker/server/internal/metrics"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return metrics.New(reg), reg
}

func TestCounters(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveSummary("Running")
	m.ObserveSummary("Running")
	m.ObserveSummary("Swimming")
	m.ObserveError("unknown_workout_type")
	m.SetStreamClients(3)

	const want = `
# HELP fittracker_server_errors_total Number of rejected calculation requests, labeled by error code.
# TYPE fittracker_server_errors_total counter
fittracker_server_errors_total{code="unknown_workout_type"} 1
# HELP fittracker_server_stream_clients Number of connected WebSocket stream clients.
# TYPE fittracker_server_stream_clients gauge
fittracker_server_stream_clients 3
# HELP fittracker_server_summaries_total Number of workout summaries computed, labeled by kind.
# TYPE fittracker_server_summaries_total counter
fittracker_server_summaries_total{kind="Running"} 2
fittracker_server_summaries_total{kind="Swimming"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(want),
		"fittracker_server_errors_total",
		"fittracker_server_stream_clients",
		"fittracker_server_summaries_total",
	)
	assert.NoError(t, err)
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}

func TestInstrument_ObservesRequests(t *testing.T) {
	m, reg := newMetrics(t)
	h := m.Instrument("health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "fittracker_server_request_duration_seconds" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		metric := mf.GetMetric()[0]
		assert.Equal(t, uint64(2), metric.GetHistogram().GetSampleCount())
		labels := map[string]string{}
		for _, lp := range metric.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, map[string]string{"route": "health", "code": "418", "method": "get"}, labels)
		found = true
	}
	assert.True(t, found, "histogram not gathered")
}

func TestHandler_ServesExposition(t *testing.T) {
	m, reg := newMetrics(t)
	m.ObserveSummary("SportsWalking")

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `fittracker_server_summaries_total{kind="SportsWalking"} 1`)
}
