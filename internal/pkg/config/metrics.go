package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// loadTimestamp records the Unix time of the last successful configuration
// load, so dashboards can spot processes running on stale configuration.
var loadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "config_load_timestamp_seconds",
	Help: "Unix timestamp of the last successful configuration load",
})

func recordLoad() {
	loadTimestamp.Set(float64(time.Now().Unix()))
}
