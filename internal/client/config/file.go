package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/securenote/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file unmarshalling. Zero values
// mean "not set" and leave the running Config unchanged.
type fileConfig struct {
	APIBaseURL          string         `json:"api_base_url" yaml:"api_base_url"`
	Origin              string         `json:"origin" yaml:"origin"`
	SessionDB           string         `json:"session_db" yaml:"session_db"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ProfileFailureDelay timex.Duration `json:"profile_failure_delay" yaml:"profile_failure_delay"`
}

func parseFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.Origin, fc.Origin)
	setString(&cfg.SessionDB, fc.SessionDB)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ProfileFailureDelay.Duration != 0 {
		cfg.ProfileFailureDelay = fc.ProfileFailureDelay.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
