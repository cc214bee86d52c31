package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_LOCALE", "en")
	t.Setenv("ADAPTER_ADDRESS", "localhost:7000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "4s")
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("WORKERS_SYNC_INTERVAL", "12s")
	t.Setenv("STUB_MODE", "legacy")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "localhost:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, 12*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, "legacy", cfg.Stub.Mode)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "often")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
