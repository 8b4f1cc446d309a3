package rest_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/presentation/rest"
)

func serveLogged(t *testing.T, req *http.Request) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /payments/{id}/{kind}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte("<Document/>"))
	})
	mux.HandleFunc("POST /payments", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rest.LoggingMiddleware(logger)(mux).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggingMiddleware_LogsRouteNotPath(t *testing.T) {
	entry := serveLogged(t, httptest.NewRequest(http.MethodGet, "/payments/3f1c/pain001", nil))

	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET /payments/{id}/{kind}", entry["route"])
	assert.NotContains(t, entry, "path")
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(len("<Document/>")), entry["bytes"])
	assert.Equal(t, false, entry["idempotency_key"])
	assert.Contains(t, entry, "duration_ms")
	assert.Contains(t, entry, "remote_addr")
}

func TestLoggingMiddleware_RecordsIdempotencyKeyPresence(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/payments", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	entry := serveLogged(t, req)

	assert.Equal(t, "POST /payments", entry["route"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(0), entry["bytes"])
	assert.Equal(t, true, entry["idempotency_key"])
}

func TestLoggingMiddleware_UnmatchedRoute(t *testing.T) {
	entry := serveLogged(t, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, "unmatched", entry["route"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}
