package messaging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/domain/event"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/internal/infrastructure/messaging"
	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/events"
	pkgkafka "github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/kafka"
)

type fakeProducer struct {
	topic    string
	messages []pkgkafka.Message
	err      error
}

func (f *fakeProducer) Publish(_ context.Context, topic string, messages ...pkgkafka.Message) error {
	f.topic = topic
	f.messages = append(f.messages, messages...)
	return f.err
}

func TestPublisher_Publish(t *testing.T) {
	producer := &fakeProducer{}
	pub := messaging.NewPublisher(producer)
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	evt := event.NewPaymentPending("pay-1", "e2e-1", at)
	require.NoError(t, pub.Publish(context.Background(), "paymock.payment.lifecycle", evt))

	assert.Equal(t, "paymock.payment.lifecycle", producer.topic)
	require.Len(t, producer.messages, 1)
	msg := producer.messages[0]
	assert.Equal(t, []byte("pay-1"), msg.Key)
	assert.Equal(t, event.TypePaymentPending, msg.Headers["event_type"])
	assert.Equal(t, event.AggregateTypePayment, msg.Headers["aggregate_type"])
	assert.Equal(t, evt.EventID().String(), msg.Headers["event_id"])

	var env events.Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, event.TypePaymentPending, env.EventType)
	assert.Equal(t, "pay-1", env.AggregateID)
	assert.JSONEq(t, `{"payment_id":"pay-1","end_to_end_id":"e2e-1"}`, string(env.Payload))
}

func TestPublisher_NoEvents(t *testing.T) {
	producer := &fakeProducer{}
	require.NoError(t, messaging.NewPublisher(producer).Publish(context.Background(), "t"))
	assert.Empty(t, producer.messages)
}

func TestPublisher_ProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	pub := messaging.NewPublisher(producer)

	err := pub.Publish(context.Background(), "t", event.NewPaymentPending("pay-1", "e2e-1", time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	pub := messaging.NewLogPublisher(logger)

	evt := event.NewPaymentRejected("pay-1", "e2e-1", "PENDING", "test", time.Now())
	require.NoError(t, pub.Publish(context.Background(), "lifecycle", evt))

	out := buf.String()
	assert.Contains(t, out, `"event_type":"payment.rejected"`)
	assert.Contains(t, out, `"aggregate_id":"pay-1"`)
	assert.Contains(t, out, `"topic":"lifecycle"`)
}
