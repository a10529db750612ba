package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client application's settings, loaded from environment
// variables with sensible defaults for local development.
type Config struct {
	// DefaultLang is the fallback language for the i18n resolver.
	DefaultLang string `env:"RSVP_DEFAULT_LANG" envDefault:"en"`

	// SessionTTL bounds how long stored session tokens live.
	// Zero keeps tokens until they are cleared.
	SessionTTL time.Duration `env:"RSVP_SESSION_TTL" envDefault:"0"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `env:"RSVP_LOG_LEVEL" envDefault:"info"`

	// LogFormat selects the log output format: json or text.
	LogFormat string `env:"RSVP_LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
