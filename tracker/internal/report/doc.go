// Package report renders batch results for the tracker CLI.
//
// New(format) returns the Formatter for one of the config formats:
//   - text: one types.Summary.Message() line per successful package; failures
//     are left to the log
//   - json: an array with one object per package, including failures
//   - prometheus: gauges in the Prometheus text exposition format, suitable
//     for the node_exporter textfile collector
package report
