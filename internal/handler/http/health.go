// Package http provides the HTTP surface of the catalog service: health
// probes, request middleware, and the Prometheus metrics endpoint. The
// per-resource handlers live in the author, magazine, and article
// subpackages.
package http

import (
	"database/sql"
	"net/http"
	"time"

	"pressdesk/internal/handler/http/respond"
	"pressdesk/internal/observability/metrics"
)

// HealthHandler reports overall service health including database
// reachability and connection pool pressure.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

type healthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]healthCheck `json:"checks"`
}

type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "healthy",
		Version:   h.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]healthCheck{},
	}

	status := http.StatusOK
	if check := h.databaseCheck(r); check.Status != "healthy" {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
		resp.Checks["database"] = check
	} else {
		resp.Checks["database"] = check
		resp.Checks["database_pool"] = h.poolCheck()
		if resp.Checks["database_pool"].Status == "degraded" {
			resp.Status = "degraded"
		}
	}

	respond.JSON(w, status, resp)
}

func (h HealthHandler) databaseCheck(r *http.Request) healthCheck {
	if h.DB == nil {
		return healthCheck{Status: "unhealthy", Message: "database not configured"}
	}
	if err := h.DB.PingContext(r.Context()); err != nil {
		return healthCheck{Status: "unhealthy", Message: respond.SanitizeError(err)}
	}
	return healthCheck{Status: "healthy"}
}

// poolCheck flags the pool as degraded when over 80% of the open
// connections are in use.
func (h HealthHandler) poolCheck() healthCheck {
	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	if stats.MaxOpenConnections > 0 {
		utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections)
		if utilization > 0.8 {
			return healthCheck{Status: "degraded", Message: "connection pool near capacity"}
		}
	}
	return healthCheck{Status: "healthy"}
}

// ReadyHandler reports readiness to receive traffic. It fails while the
// database is unreachable so load balancers drain the instance.
type ReadyHandler struct {
	DB *sql.DB
}

func (h ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil || h.DB.PingContext(r.Context()) != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler reports process liveness only; it never touches the database.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
