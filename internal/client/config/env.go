package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
//
// Recognized variables:
//
//	SERVER_ENDPOINT  base URL of the backend HTTP API
//	DATABASE_DSN     path of the local session database
//	REQUEST_TIMEOUT  per-request timeout (time.ParseDuration format)
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SERVER_ENDPOINT"); v != "" {
		config.ServerEndpoint = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
}
