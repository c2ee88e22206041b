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

	assert.Equal(t, c.ServerEndpoint, "http://127.0.0.1:8080")
	assert.Equal(t, c.DatabaseDSN, "session.db")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.ServerEndpoint, "http://127.0.0.1:8080")
	assert.Equal(t, c.RequestTimeout, 10*time.Second)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ENDPOINT", "http://api.example.com")
	t.Setenv("DATABASE_DSN", "/tmp/session.db")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://api.example.com", c.ServerEndpoint)
	assert.Equal(t, "/tmp/session.db", c.DatabaseDSN)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestParseEnv_BadDurationKeepsDefault(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
