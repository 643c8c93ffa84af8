package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pressdesk/internal/observability/metrics"
)

func TestCatalogGauges(t *testing.T) {
	metrics.UpdateAuthorsTotal(3)
	metrics.UpdateMagazinesTotal(2)
	metrics.UpdateArticlesTotal(12)

	if got := testutil.ToFloat64(metrics.AuthorsTotal); got != 3 {
		t.Fatalf("authors_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(metrics.MagazinesTotal); got != 2 {
		t.Fatalf("magazines_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.ArticlesTotal); got != 12 {
		t.Fatalf("articles_total = %v, want 12", got)
	}
}

func TestRecordArticleCreated(t *testing.T) {
	before := testutil.ToFloat64(metrics.ArticlesCreatedTotal)
	metrics.RecordArticleCreated()
	if got := testutil.ToFloat64(metrics.ArticlesCreatedTotal); got != before+1 {
		t.Fatalf("articles_created_total = %v, want %v", got, before+1)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/authors", "200"))
	metrics.RecordHTTPRequest("GET", "/authors", "200", 25*time.Millisecond, 512)
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/authors", "200"))
	if after != before+1 {
		t.Fatalf("http_requests_total = %v, want %v", after, before+1)
	}
}

func TestUpdateDBConnectionStats(t *testing.T) {
	metrics.UpdateDBConnectionStats(4, 6)
	if got := testutil.ToFloat64(metrics.DBConnectionsActive); got != 4 {
		t.Fatalf("db_connections_active = %v, want 4", got)
	}
	if got := testutil.ToFloat64(metrics.DBConnectionsIdle); got != 6 {
		t.Fatalf("db_connections_idle = %v, want 6", got)
	}
}
