package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/metrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Sum[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				out[m.Name] = sum
			}
		}
	}
	return out
}

func total(sum metricdata.Sum[int64]) int64 {
	var n int64
	for _, dp := range sum.DataPoints {
		n += dp.Value
	}
	return n
}

func TestRecorder_Counts(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	rec, err := metrics.NewRecorder(provider)
	require.NoError(t, err)

	ctx := context.Background()
	rec.PaymentCreated(ctx, "EUR")
	rec.PaymentCreated(ctx, "SEK")
	rec.IdempotentReplay(ctx)
	rec.ValidationFailed(ctx)
	rec.StatusTransition(ctx, "PENDING")
	rec.StatusTransition(ctx, "PENDING")
	rec.StatusTransition(ctx, "REJECTED")
	rec.MessageRendered(ctx, "pain.001.001.03")

	got := collect(t, reader)
	assert.Equal(t, int64(2), total(got["paymock_payments_created"]))
	assert.Equal(t, int64(1), total(got["paymock_idempotent_replays"]))
	assert.Equal(t, int64(1), total(got["paymock_validation_failures"]))
	assert.Equal(t, int64(1), total(got["paymock_messages_rendered"]))

	transitions := got["paymock_status_transitions"]
	byTarget := map[string]int64{}
	for _, dp := range transitions.DataPoints {
		to, _ := dp.Attributes.Value(attribute.Key("to"))
		byTarget[to.AsString()] += dp.Value
	}
	assert.Equal(t, map[string]int64{"PENDING": 2, "REJECTED": 1}, byTarget)
}

func TestRecorder_NoopProvider(t *testing.T) {
	rec, err := metrics.NewRecorder(noop.NewMeterProvider())
	require.NoError(t, err)
	rec.PaymentCreated(context.Background(), "EUR")
}
