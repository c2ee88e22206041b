package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authgate/internal/flagx"
	"github.com/dmitrijs2005/authgate/internal/timex"
)

// JsonConfig is the JSON-file shape of the client configuration. It uses
// timex.Duration so the timeout can be written either as a string ("10s")
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpoint string         `json:"server_endpoint"`
	DatabaseDSN    string         `json:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any. A missing flag means no file is loaded; an unreadable or
// invalid file panics, matching the fail-fast flag parsing below.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerEndpoint = c.ServerEndpoint
	config.DatabaseDSN = c.DatabaseDSN
	config.RequestTimeout = c.RequestTimeout.Duration
}
