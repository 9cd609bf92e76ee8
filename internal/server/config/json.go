package config

import (
	"encoding/json"
	"os"

	"github.com/taskhub/taskhub/internal/flagx"
	"github.com/taskhub/taskhub/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Duration fields accept both strings ("1h") and integer nanoseconds.
// The secret key is intentionally absent: it comes from the environment.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. Missing or invalid files panic: a requested
// config file that cannot be used is a startup error.
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

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}
