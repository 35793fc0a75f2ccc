package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var (
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrInvalidSettings  = errors.New("invalid settings")
)

// Settings holds runtime infrastructure options. Game rules are constants in
// the engine package and are not configurable.
type Settings struct {
	LogLevel  string            `yaml:"log_level" env:"CARSIM_LOG_LEVEL" env-default:"warn" env-description:"Log level (debug, info, warn, error)" validate:"oneof=debug info warn error"`
	Provider  ProviderSettings  `yaml:"provider"`
	Telemetry TelemetrySettings `yaml:"telemetry"`
	Ngrok     NgrokSettings     `yaml:"ngrok"`
}

// ProviderSettings controls where the driver comes from
type ProviderSettings struct {
	URL      string        `yaml:"url" env:"CARSIM_PROVIDER_URL" env-default:"https://randomuser.me/api/" env-description:"Random driver profile endpoint" validate:"required,url"`
	Timeout  time.Duration `yaml:"timeout" env:"CARSIM_PROVIDER_TIMEOUT" env-default:"5s" env-description:"Driver lookup timeout" validate:"gt=0"`
	Fallback string        `yaml:"fallback" env:"CARSIM_FALLBACK" env-default:"static" env-description:"Fallback driver strategy (static, pool)" validate:"oneof=static pool"`
	Offline  bool          `yaml:"offline" env:"CARSIM_OFFLINE" env-description:"Skip the network and use the fallback driver"`
}

// TelemetrySettings controls the optional read-only HTTP server
type TelemetrySettings struct {
	Addr string `yaml:"addr" env:"CARSIM_TELEMETRY_ADDR" env-description:"Telemetry listen address, empty disables it" validate:"omitempty,hostname_port"`
}

// NgrokSettings controls the optional public tunnel for telemetry
type NgrokSettings struct {
	Enabled   bool   `yaml:"enabled" env:"NGROK_ENABLED" env-description:"Expose telemetry through an ngrok tunnel"`
	AuthToken string `yaml:"auth_token" env:"NGROK_AUTHTOKEN,NGROK_AUTH_TOKEN" env-description:"Ngrok auth token"`
	Domain    string `yaml:"domain" env:"NGROK_DOMAIN" env-description:"Custom ngrok domain"`
}

// LoadDotEnv loads variables from .env files that exist. Missing files are
// skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads settings from the environment
func Load() (*Settings, error) {
	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads settings from a YAML, JSON, TOML or .env file, then applies
// environment overrides
func LoadFile(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
	}

	var s Settings
	if err := cleanenv.ReadConfig(path, &s); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every validate tag
func (s *Settings) Validate() error {
	s.Provider.Fallback = strings.ToLower(strings.TrimSpace(s.Provider.Fallback))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Level returns the parsed log level, warn if unparseable
func (s *Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// TelemetryEnabled reports whether the telemetry server should start
func (s *Settings) TelemetryEnabled() bool {
	return s.Telemetry.Addr != ""
}

// Describe lists every environment variable with its default and purpose
func Describe() (string, error) {
	var s Settings
	header := "Environment variables:"
	return cleanenv.GetDescription(&s, &header)
}
