package http_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handler "pressdesk/internal/handler/http"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogging_preservesResponse(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	handler.Logging(discardLogger())(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/authors", nil))

	if rec.Code != http.StatusAccepted || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q, want 202 ok", rec.Code, rec.Body.String())
	}
}

func TestRecover_convertsPanicTo500(t *testing.T) {
	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	// Logging wraps Recover as in the production chain, so the panic entry
	// goes to the request-scoped logger instead of the process default.
	wrapped := handler.Logging(discardLogger())(handler.Recover()(inner))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/authors", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestTimeout_slowHandlerGets503(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	})

	rec := httptest.NewRecorder()
	handler.Timeout(10*time.Millisecond)(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestRateLimiter_burstThenReject(t *testing.T) {
	rl := handler.NewRateLimiter(1, 2)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := rl.Middleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	req.RemoteAddr = "10.0.0.1:50000"

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
}

func TestRateLimiter_perClientBuckets(t *testing.T) {
	rl := handler.NewRateLimiter(1, 1)
	wrapped := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/authors", nil)
	first.RemoteAddr = "10.0.0.1:50000"
	second := httptest.NewRequest(http.MethodGet, "/authors", nil)
	second.RemoteAddr = "10.0.0.2:50000"

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first client status = %d, want 200", rec.Code)
	}

	// First client exhausted its bucket; a different client is unaffected.
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, first)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first client second request = %d, want 429", rec.Code)
	}

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("second client status = %d, want 200", rec.Code)
	}
}
