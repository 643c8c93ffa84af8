package http

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pressdesk/internal/handler/http/responsewriter"
	"pressdesk/internal/observability/metrics"
	"pressdesk/internal/observability/slo"
)

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// sloTracker collects request outcomes for the SLO gauges. The server starts
// its flush loop at boot.
var sloTracker = slo.NewTracker()

// SLOTracker returns the tracker fed by MetricsMiddleware.
func SLOTracker() *slo.Tracker {
	return sloTracker
}

// pathPatterns maps dynamic routes to templates so the path label keeps
// a bounded cardinality. Evaluated most specific first.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/authors/\d+/articles$`), "/authors/:id/articles"},
	{regexp.MustCompile(`^/authors/\d+/magazines$`), "/authors/:id/magazines"},
	{regexp.MustCompile(`^/authors/\d+/topic-areas$`), "/authors/:id/topic-areas"},
	{regexp.MustCompile(`^/authors/\d+$`), "/authors/:id"},
	{regexp.MustCompile(`^/magazines/\d+/articles$`), "/magazines/:id/articles"},
	{regexp.MustCompile(`^/magazines/\d+/article-titles$`), "/magazines/:id/article-titles"},
	{regexp.MustCompile(`^/magazines/\d+/contributors$`), "/magazines/:id/contributors"},
	{regexp.MustCompile(`^/magazines/\d+/contributing-authors$`), "/magazines/:id/contributing-authors"},
	{regexp.MustCompile(`^/magazines/\d+$`), "/magazines/:id"},
	{regexp.MustCompile(`^/articles/\d+/content$`), "/articles/:id/content"},
	{regexp.MustCompile(`^/articles/\d+$`), "/articles/:id"},
}

// NormalizePath collapses numeric IDs to a template form. Static paths
// pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}

// MetricsMiddleware records request count, latency, and response size for
// every request passing through it.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)

		sloTracker.Observe(rw.StatusCode(), time.Since(start))
		metrics.RecordHTTPRequest(
			r.Method,
			NormalizePath(r.URL.Path),
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			rw.BytesWritten(),
		)
	})
}
