package tlsutil

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmljay/corporate-payments-ba-qa-portfolio/pkg/testutil"
)

func TestClientConfig_SystemPool(t *testing.T) {
	cfg, err := ClientConfig("", false)
	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.Nil(t, cfg.RootCAs)
	assert.False(t, cfg.InsecureSkipVerify)
}

func TestClientConfig_InsecureSkipVerify(t *testing.T) {
	cfg, err := ClientConfig("", true)
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
}

func TestClientConfig_MissingCAFile(t *testing.T) {
	_, err := ClientConfig(filepath.Join(t.TempDir(), "missing.pem"), false)
	testutil.AssertErrorContains(t, err, "read CA file")
}

func TestClientConfig_InvalidCAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

	_, err := ClientConfig(path, false)
	testutil.AssertErrorContains(t, err, "failed to parse CA certificate")
}
