// Package metrics exposes Prometheus instrumentation for fittracker-server.
//
// New(reg) creates the collectors and registers them on reg. Pass
// prometheus.DefaultRegisterer in production; tests pass a fresh registry so
// every test starts from zero.
//
// Collectors:
//
//	fittracker_server_summaries_total{kind}          successful calculations
//	fittracker_server_errors_total{code}             rejected calculations by error code
//	fittracker_server_request_duration_seconds{...}  API latency by route, code, method
//	fittracker_server_stream_clients                 connected WebSocket clients
package metrics
