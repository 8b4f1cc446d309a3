package rest

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// unmatchedRoute is logged for requests no registered pattern served.
const unmatchedRoute = "unmatched"

// recordingWriter captures what a handler wrote for the request log.
type recordingWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// LoggingMiddleware logs one line per request and names the request span after the
// matched route. It must wrap the ServeMux directly: the route is read from r.Pattern
// after the mux has matched it, so payment ids do not split log lines or span names.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			trace.SpanFromContext(r.Context()).SetName(route)
			logger.InfoContext(r.Context(), "request",
				"route", route,
				"status", rw.status,
				"bytes", rw.bytes,
				"idempotency_key", r.Header.Get(idempotencyKeyHeader) != "",
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}
