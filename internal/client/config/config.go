// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the authgate CLI.
//
// Fields:
//   - ServerEndpoint: base URL of the backend HTTP API.
//   - DatabaseDSN: path of the local SQLite session database.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerEndpoint string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpoint = "http://127.0.0.1:8080"
	c.DatabaseDSN = "session.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
