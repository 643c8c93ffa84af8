// Package slo exposes the service level objective gauges. The gauges are
// updated periodically from the HTTP metrics; the targets live here so
// alerts and dashboards reference a single source.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets for the API.
const (
	// AvailabilitySLO is the target uptime percentage
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the 95th percentile latency target in seconds
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the 99th percentile latency target in seconds
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum acceptable error rate as a ratio
	ErrorRateSLO = 0.001
)

var (
	// SLOAvailability tracks the current availability ratio (0-1),
	// (total_requests - 5xx_errors) / total_requests
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Current availability ratio (0-1), target: 0.999",
		},
	)

	// SLOLatencyP95 tracks the current p95 latency in seconds
	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "Current p95 latency in seconds, target: 0.200",
		},
	)

	// SLOLatencyP99 tracks the current p99 latency in seconds
	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "Current p99 latency in seconds, target: 0.500",
		},
	)

	// SLOErrorRate tracks the current error rate ratio (0-1)
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Current error rate ratio (0-1), target: 0.001",
		},
	)
)

// UpdateAvailability sets the availability gauge.
func UpdateAvailability(ratio float64) {
	SLOAvailability.Set(ratio)
}

// UpdateLatencyP95 sets the p95 latency gauge, in seconds.
func UpdateLatencyP95(seconds float64) {
	SLOLatencyP95.Set(seconds)
}

// UpdateLatencyP99 sets the p99 latency gauge, in seconds.
func UpdateLatencyP99(seconds float64) {
	SLOLatencyP99.Set(seconds)
}

// UpdateErrorRate sets the error rate gauge.
func UpdateErrorRate(ratio float64) {
	SLOErrorRate.Set(ratio)
}
