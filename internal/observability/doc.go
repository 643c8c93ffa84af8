// Package observability groups the monitoring infrastructure: structured
// logging, Prometheus metrics, OpenTelemetry tracing, and SLO gauges.
//
// Subpackages:
//   - logging: slog-based JSON logging with request ID propagation
//   - metrics: Prometheus registry for HTTP, database, and catalog metrics
//   - tracing: OpenTelemetry HTTP middleware and the application tracer
//   - slo: service level objective gauges fed from the metrics above
package observability
