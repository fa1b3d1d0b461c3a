package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://127.0.0.1:8443/api", c.APIBaseURL)
	assert.Equal(t, "storeadmin.db", c.SessionFile)
	assert.Equal(t, 5*time.Second, c.ToastTTL)
	assert.Equal(t, 10, c.PageSize)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://127.0.0.1:8443/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.ToastTTL)
}
