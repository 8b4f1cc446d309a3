package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT", "PENDING_DELAY",
		"CUTOFF_HOUR", "TZ_LOCATION", "KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_CLIENT_ID",
		"KAFKA_PUBLISH_TIMEOUT", "KAFKA_TLS", "KAFKA_TLS_CA_FILE", "KAFKA_TLS_INSECURE", "KAFKA_SASL_MECHANISM", "KAFKA_SASL_USERNAME",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 50*time.Millisecond, cfg.Lifecycle.PendingDelay)
	assert.Equal(t, 16, cfg.Lifecycle.CutoffHour)
	assert.Equal(t, "Local", cfg.Lifecycle.Location)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "paymock.payment.lifecycle", cfg.Kafka.Topic)
	assert.Equal(t, 2*time.Second, cfg.Kafka.PublishTimeout)
	assert.False(t, cfg.Kafka.TLS)
	assert.False(t, cfg.Kafka.SASLEnabled())
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "payment-mock", cfg.Telemetry.ServiceName)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PENDING_DELAY", "250ms")
	t.Setenv("CUTOFF_HOUR", "15")
	t.Setenv("TZ_LOCATION", "UTC")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("KAFKA_PUBLISH_TIMEOUT", "500ms")

	cfg := Load()
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 250*time.Millisecond, cfg.Lifecycle.PendingDelay)
	assert.Equal(t, 15, cfg.Lifecycle.CutoffHour)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Kafka.PublishTimeout)

	loc, err := cfg.Lifecycle.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_KafkaSecurity(t *testing.T) {
	t.Setenv("KAFKA_TLS", "true")
	t.Setenv("KAFKA_TLS_CA_FILE", "/etc/kafka/ca.pem")
	t.Setenv("KAFKA_TLS_INSECURE", "nope")
	t.Setenv("KAFKA_SASL_MECHANISM", "SCRAM-SHA-512")
	t.Setenv("KAFKA_SASL_USERNAME", "paymock")
	t.Setenv("KAFKA_SASL_PASSWORD", "secret")

	cfg := Load()
	assert.True(t, cfg.Kafka.TLS)
	assert.Equal(t, "/etc/kafka/ca.pem", cfg.Kafka.TLSCAFile)
	assert.False(t, cfg.Kafka.TLSInsecure)
	assert.Equal(t, "SCRAM-SHA-512", cfg.Kafka.SASLMechanism)
	assert.True(t, cfg.Kafka.SASLEnabled())
	assert.Equal(t, "secret", cfg.Kafka.SASLPassword)
}

func TestLoad_PortTakesPrecedence(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("HTTP_PORT", "8080")
	assert.Equal(t, 4000, Load().HTTPPort)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("PENDING_DELAY", "soon")
	cfg := Load()
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, 50*time.Millisecond, cfg.Lifecycle.PendingDelay)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTPPort:  3000,
			Lifecycle: LifecycleConfig{PendingDelay: 50 * time.Millisecond, CutoffHour: 16, Location: "UTC"},
			Kafka:     KafkaConfig{Topic: "t"},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.HTTPPort = 0 }, "out of range"},
		{"port too large", func(c *Config) { c.HTTPPort = 70000 }, "out of range"},
		{"zero delay", func(c *Config) { c.Lifecycle.PendingDelay = 0 }, "pending delay"},
		{"cutoff 24", func(c *Config) { c.Lifecycle.CutoffHour = 24 }, "cutoff hour"},
		{"bad location", func(c *Config) { c.Lifecycle.Location = "Mars/Olympus" }, "load location"},
		{"brokers without topic", func(c *Config) { c.Kafka.Brokers = []string{"k:9092"}; c.Kafka.Topic = "" }, "topic"},
		{"unknown sasl mechanism", func(c *Config) { c.Kafka.SASLMechanism = "GSSAPI" }, "sasl mechanism"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			testutil.AssertErrorContains(t, err, tt.wantErr)
		})
	}
}
