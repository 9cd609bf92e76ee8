package config

import (
	"os"
	"time"
)

// Environment variable names recognized by the server.
const (
	EnvEndpointAddr  = "TASKHUB_ADDR"
	EnvDatabaseDSN   = "TASKHUB_DATABASE_DSN"
	EnvSecretKey     = "TASKHUB_SECRET_KEY"
	EnvTokenValidity = "TASKHUB_TOKEN_VALIDITY"
)

// parseEnv overlays configuration from environment variables. The JWT
// secret is only ever read here.
func parseEnv(config *Config) {
	if v := os.Getenv(EnvEndpointAddr); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(EnvTokenValidity); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
