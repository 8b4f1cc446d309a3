package kafka

import (
	"crypto/tls"
	"time"
)

// Config holds Kafka connection parameters for publishing.
type Config struct {
	Brokers []string

	// ClientID identifies this producer to the brokers.
	ClientID string

	// BatchTimeout bounds how long a partially filled batch waits before being flushed.
	// Zero selects defaultBatchTimeout.
	BatchTimeout time.Duration

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN" or "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	// TLS enables TLS for Kafka connections. TLSConfig, when set, replaces the
	// default client configuration.
	TLS         bool
	TLSConfig   *tls.Config
	SASLEnabled bool
}

// Enabled reports whether at least one broker is configured.
func (c Config) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}
