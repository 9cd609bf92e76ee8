package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddr != ":3000" {
		t.Fatalf("unexpected default addr: %q", cfg.EndpointAddr)
	}
	if cfg.TokenValidityDuration != time.Hour {
		t.Fatalf("unexpected default token validity: %v", cfg.TokenValidityDuration)
	}
	if cfg.SecretKey != "" {
		t.Fatalf("secret key must not have a default, got %q", cfg.SecretKey)
	}
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv(EnvEndpointAddr, ":8088")
	t.Setenv(EnvSecretKey, "from-env")
	t.Setenv(EnvTokenValidity, "30m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.EndpointAddr != ":8088" {
		t.Fatalf("expected env addr, got %q", cfg.EndpointAddr)
	}
	if cfg.SecretKey != "from-env" {
		t.Fatalf("expected env secret, got %q", cfg.SecretKey)
	}
	if cfg.TokenValidityDuration != 30*time.Minute {
		t.Fatalf("expected 30m validity, got %v", cfg.TokenValidityDuration)
	}
}

func TestParseEnv_InvalidDurationIgnored(t *testing.T) {
	t.Setenv(EnvTokenValidity, "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.TokenValidityDuration != time.Hour {
		t.Fatalf("invalid duration must keep the default, got %v", cfg.TokenValidityDuration)
	}
}

func TestParseJson_Overlays(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	content := `{"endpoint_addr": ":4000", "database_dsn": "postgres://json", "token_validity_duration": "2h"}`
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"server", "-c", f.Name()}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddr != ":4000" {
		t.Fatalf("expected json addr, got %q", cfg.EndpointAddr)
	}
	if cfg.DatabaseDSN != "postgres://json" {
		t.Fatalf("expected json dsn, got %q", cfg.DatabaseDSN)
	}
	if cfg.TokenValidityDuration != 2*time.Hour {
		t.Fatalf("expected 2h validity, got %v", cfg.TokenValidityDuration)
	}
}
