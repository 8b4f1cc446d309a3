package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitMetricsServesRecordedCounters(t *testing.T) {
	provider, handler, err := InitMetrics(MetricsConfig{ServiceName: "payment-mock"})
	if err != nil {
		t.Fatalf("InitMetrics() returned error: %v", err)
	}
	defer provider.Shutdown(context.Background())

	counter, err := provider.Meter("test").Int64Counter("paymock_test_events")
	if err != nil {
		t.Fatalf("create counter: %v", err)
	}
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "paymock_test_events_total") {
		t.Errorf("expected counter in exposition, got:\n%s", body)
	}
}

func TestInitMetricsIsRepeatable(t *testing.T) {
	for i := 0; i < 2; i++ {
		provider, _, err := InitMetrics(MetricsConfig{})
		if err != nil {
			t.Fatalf("InitMetrics() call %d returned error: %v", i, err)
		}
		_ = provider.Shutdown(context.Background())
	}
}
