package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint": "http://api.example.com",
		"database_dsn": "/tmp/session.db",
		"request_timeout": "20s"
	}`), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://api.example.com", c.ServerEndpoint)
	assert.Equal(t, "/tmp/session.db", c.DatabaseDSN)
	assert.Equal(t, 20*time.Second, c.RequestTimeout)
}

func TestParseJson_NoFlagDoesNothing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerEndpoint)
}
