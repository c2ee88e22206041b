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
//	ADDRESS         HTTP bind address (e.g., ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	SECRET_KEY      JWT HMAC secret
//	TOKEN_VALIDITY  session token lifetime (time.ParseDuration format)
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
