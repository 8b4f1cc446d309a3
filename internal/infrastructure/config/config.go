package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort        int
	LogLevel        string
	LogFormat       string
	Lifecycle       LifecycleConfig
	Kafka           KafkaConfig
	Telemetry       TelemetryConfig
	ShutdownTimeout time.Duration
}

type LifecycleConfig struct {
	PendingDelay time.Duration
	CutoffHour   int
	Location     string
}

type KafkaConfig struct {
	Brokers        []string
	Topic          string
	ClientID       string
	PublishTimeout time.Duration
	TLS            bool
	TLSCAFile      string
	TLSInsecure    bool
	SASLMechanism  string
	SASLUsername   string
	SASLPassword   string
}

// SASLEnabled reports whether broker authentication is configured.
func (k KafkaConfig) SASLEnabled() bool {
	return k.SASLUsername != ""
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Validate checks configuration values.
func (c Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTPPort)
	}
	if c.Lifecycle.PendingDelay <= 0 {
		return fmt.Errorf("pending delay must be positive, got %s", c.Lifecycle.PendingDelay)
	}
	if c.Lifecycle.CutoffHour < 0 || c.Lifecycle.CutoffHour > 23 {
		return fmt.Errorf("cutoff hour %d outside 0..23", c.Lifecycle.CutoffHour)
	}
	if _, err := c.Lifecycle.LoadLocation(); err != nil {
		return err
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are configured")
	}
	switch c.Kafka.SASLMechanism {
	case "", "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512":
	default:
		return fmt.Errorf("unsupported kafka sasl mechanism %q", c.Kafka.SASLMechanism)
	}
	return nil
}

// LoadLocation resolves the time zone the cutoff is evaluated in.
func (l LifecycleConfig) LoadLocation() (*time.Location, error) {
	if l.Location == "" || l.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(l.Location)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", l.Location, err)
	}
	return loc, nil
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		HTTPPort:  getEnvInt("PORT", getEnvInt("HTTP_PORT", 3000)),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Lifecycle: LifecycleConfig{
			PendingDelay: getEnvDuration("PENDING_DELAY", 50*time.Millisecond),
			CutoffHour:   getEnvInt("CUTOFF_HOUR", 16),
			Location:     getEnv("TZ_LOCATION", "Local"),
		},
		Kafka: KafkaConfig{
			Brokers:        getEnvList("KAFKA_BROKERS"),
			Topic:          getEnv("KAFKA_TOPIC", "paymock.payment.lifecycle"),
			ClientID:       getEnv("KAFKA_CLIENT_ID", "payment-mock"),
			PublishTimeout: getEnvDuration("KAFKA_PUBLISH_TIMEOUT", 2*time.Second),
			TLS:            getEnvBool("KAFKA_TLS", false),
			TLSCAFile:      getEnv("KAFKA_TLS_CA_FILE", ""),
			TLSInsecure:    getEnvBool("KAFKA_TLS_INSECURE", false),
			SASLMechanism:  getEnv("KAFKA_SASL_MECHANISM", ""),
			SASLUsername:   getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:   getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "payment-mock"),
		},
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
