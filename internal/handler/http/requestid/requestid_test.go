package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pressdesk/internal/handler/http/requestid"
)

func TestFromContext(t *testing.T) {
	if got := requestid.FromContext(context.Background()); got != "" {
		t.Fatalf("empty context yielded %q", got)
	}

	ctx := requestid.WithRequestID(context.Background(), "abc-123")
	if got := requestid.FromContext(ctx); got != "abc-123" {
		t.Fatalf("FromContext = %q", got)
	}
}

func TestMiddleware_generatesID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("no request ID in context")
	}
	if got := rec.Header().Get(requestid.RequestIDHeader); got != seen {
		t.Fatalf("response header %q != context id %q", got, seen)
	}
}

func TestMiddleware_propagatesIncomingID(t *testing.T) {
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.RequestIDHeader, "client-supplied")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "client-supplied" {
		t.Fatalf("context id = %q, want the incoming header value", seen)
	}
}
