package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuthRequestsTotal counts login attempts by result ("success" or "failure").
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Total number of authentication requests",
	},
	[]string{"result"},
)

// RecordAuthRequest counts one login attempt.
func RecordAuthRequest(result string) {
	AuthRequestsTotal.WithLabelValues(result).Inc()
}
