package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// clearEnv makes sure no variable from the host leaks into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARSIM_LOG_LEVEL", "CARSIM_PROVIDER_URL", "CARSIM_PROVIDER_TIMEOUT",
		"CARSIM_FALLBACK", "CARSIM_OFFLINE", "CARSIM_TELEMETRY_ADDR",
		"NGROK_ENABLED", "NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN", "NGROK_DOMAIN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", s.LogLevel)
	}
	if s.Provider.URL != "https://randomuser.me/api/" {
		t.Errorf("Unexpected provider URL %s", s.Provider.URL)
	}
	if s.Provider.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", s.Provider.Timeout)
	}
	if s.Provider.Fallback != "static" {
		t.Errorf("Expected static fallback, got %s", s.Provider.Fallback)
	}
	if s.Provider.Offline {
		t.Error("Offline should default to false")
	}
	if s.TelemetryEnabled() {
		t.Error("Telemetry should be disabled by default")
	}
	if s.Level() != log.WarnLevel {
		t.Errorf("Expected warn level, got %v", s.Level())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARSIM_LOG_LEVEL", "debug")
	t.Setenv("CARSIM_PROVIDER_TIMEOUT", "250ms")
	t.Setenv("CARSIM_FALLBACK", "pool")
	t.Setenv("CARSIM_OFFLINE", "true")
	t.Setenv("CARSIM_TELEMETRY_ADDR", "localhost:8080")
	t.Setenv("NGROK_AUTH_TOKEN", "secret")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Level() != log.DebugLevel {
		t.Errorf("Expected debug level, got %v", s.Level())
	}
	if s.Provider.Timeout != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", s.Provider.Timeout)
	}
	if s.Provider.Fallback != "pool" {
		t.Errorf("Expected pool, got %s", s.Provider.Fallback)
	}
	if !s.Provider.Offline {
		t.Error("Expected offline mode")
	}
	if !s.TelemetryEnabled() || s.Telemetry.Addr != "localhost:8080" {
		t.Errorf("Unexpected telemetry settings %+v", s.Telemetry)
	}
	if s.Ngrok.AuthToken != "secret" {
		t.Errorf("Expected auth token from NGROK_AUTH_TOKEN, got %q", s.Ngrok.AuthToken)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown fallback", "CARSIM_FALLBACK", "random"},
		{"unknown log level", "CARSIM_LOG_LEVEL", "chatty"},
		{"bad url", "CARSIM_PROVIDER_URL", "not a url"},
		{"bad telemetry addr", "CARSIM_TELEMETRY_ADDR", "no-port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "carsim.yaml")
	content := `log_level: info
provider:
  fallback: pool
  timeout: 2s
telemetry:
  addr: 127.0.0.1:9090
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if s.LogLevel != "info" {
		t.Errorf("Expected info, got %s", s.LogLevel)
	}
	if s.Provider.Fallback != "pool" {
		t.Errorf("Expected pool, got %s", s.Provider.Fallback)
	}
	if s.Provider.Timeout != 2*time.Second {
		t.Errorf("Expected 2s, got %v", s.Provider.Timeout)
	}
	if s.Provider.URL == "" {
		t.Error("Expected default provider URL to be filled in")
	}
	if s.Telemetry.Addr != "127.0.0.1:9090" {
		t.Errorf("Unexpected telemetry addr %s", s.Telemetry.Addr)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("Expected ErrSettingsNotFound, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CARSIM_FALLBACK=pool\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	if err := LoadDotEnv(filepath.Join(dir, "absent.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Provider.Fallback != "pool" {
		t.Errorf("Expected pool from .env, got %s", s.Provider.Fallback)
	}
}

func TestValidateNormalizesCase(t *testing.T) {
	s := &Settings{
		LogLevel: " INFO ",
		Provider: ProviderSettings{
			URL:      "https://randomuser.me/api/",
			Timeout:  time.Second,
			Fallback: "Pool",
		},
	}

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if s.LogLevel != "info" || s.Provider.Fallback != "pool" {
		t.Errorf("Expected normalized values, got %q %q", s.LogLevel, s.Provider.Fallback)
	}
}

func TestDescribe(t *testing.T) {
	text, err := Describe()
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	for _, key := range []string{"CARSIM_FALLBACK", "CARSIM_PROVIDER_TIMEOUT", "NGROK_DOMAIN"} {
		if !strings.Contains(text, key) {
			t.Errorf("Expected description to mention %s", key)
		}
	}
}
