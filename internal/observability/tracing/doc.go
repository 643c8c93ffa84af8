// Package tracing provides OpenTelemetry integration: the application
// tracer and an HTTP middleware that opens a server span per request and
// echoes the trace ID back to the client.
package tracing
