// Package metrics centralizes the Prometheus metrics for the application:
// HTTP request metrics, database metrics, and gauges over the catalog
// (authors, magazines, articles). Everything is registered with the default
// registry and served from the /metrics endpoint.
package metrics
