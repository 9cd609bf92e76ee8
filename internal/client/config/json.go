package config

import (
	"encoding/json"
	"os"

	"github.com/taskhub/taskhub/internal/flagx"
	"github.com/taskhub/taskhub/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDir       string         `json:"state_dir"`
}

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

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.StateDir != "" {
		config.StateDir = c.StateDir
	}
}
