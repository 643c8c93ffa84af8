package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/trace"

	"pressdesk/internal/handler/http/respond"
	"pressdesk/internal/handler/http/responsewriter"
	"pressdesk/internal/observability/logging"
)

// Logging emits one structured line per request with status, duration,
// and the request and trace IDs for correlation. The request-scoped logger
// is stored in the context so inner layers log with the same request ID.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responsewriter.Wrap(w)

			reqLogger := logging.WithRequestID(r.Context(), logger)
			r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))

			next.ServeHTTP(rw, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.StatusCode()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Int("bytes", rw.BytesWritten()),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if span := trace.SpanFromContext(r.Context()); span.SpanContext().HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", span.SpanContext().TraceID().String()))
			}

			if rw.StatusCode() >= http.StatusInternalServerError {
				reqLogger.Error("request completed", attrs...)
			} else {
				reqLogger.Info("request completed", attrs...)
			}
		})
	}
}

// Recover converts panics into 500 responses instead of killing the
// connection, logging the stack for diagnosis. The logger comes from the
// request context so the entry carries the request ID.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logging.FromContext(r.Context()).Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout cancels the request context after d and returns 503 if the
// handler has not produced a response by then.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, `{"error":"request timed out"}`)
	}
}

// LimitRequestBody caps request bodies at n bytes. Reads past the limit fail
// inside the handler's JSON decode.
func LimitRequestBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
