// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Task Hub client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - StateDir: directory holding the persisted session; empty means the
//     user config directory is used.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StateDir       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
