// Package metrics exports logger statistics to Prometheus.
//
// Metrics exposed:
//   - msglog_lines_total{sink, level}: lines written per sink and level
//   - msglog_write_errors_total{sink}: failed writes per sink
//   - msglog_contained_failures_total: log calls whose failure the logger
//     swallowed
//
// Register the collector of a logger with
//
//	prometheus.MustRegister(metrics.ForLogger(l))
package metrics
