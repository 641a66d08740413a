package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the SecureNote CLI.
//
// Fields:
//   - APIBaseURL: root URL of the HTTP JSON API.
//   - Origin: public origin share links are built on.
//   - SessionDB: SQLite file the session is persisted in.
//   - LogLevel: debug, info, warn or error.
//   - RequestTimeout: per-request HTTP timeout.
//   - ProfileFailureDelay: pause before logging out after a failed profile fetch.
type Config struct {
	APIBaseURL          string        `env:"API_BASE_URL"`
	Origin              string        `env:"APP_ORIGIN"`
	SessionDB           string        `env:"SESSION_DB"`
	LogLevel            string        `env:"LOG_LEVEL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	ProfileFailureDelay time.Duration `env:"PROFILE_FAILURE_DELAY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.Origin = "http://localhost:5173"
	c.SessionDB = "securenote.db"
	c.LogLevel = "info"
	c.RequestTimeout = 15 * time.Second
	c.ProfileFailureDelay = 2 * time.Second
}

// Load constructs a Config: defaults, then the config file named by f (if
// any), then the environment, then flags explicitly set on the command
// line. f may be nil.
func Load(f *Flags) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if f != nil && f.ConfigFile != "" {
		if err := parseFile(f.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if f != nil {
		f.apply(cfg)
	}
	return cfg, nil
}

// parseEnv overlays variables that are set; unset ones leave fields as is.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
