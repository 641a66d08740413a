package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name:    "json strings",
			file:    "cfg.json",
			content: `{"api_base_url":"http://a/api","request_timeout":"3s","profile_failure_delay":"1s"}`,
			want: func(c *Config) {
				c.APIBaseURL = "http://a/api"
				c.RequestTimeout = 3 * time.Second
				c.ProfileFailureDelay = time.Second
			},
		},
		{
			name:    "json nanoseconds",
			file:    "cfg.json",
			content: `{"request_timeout":2000000000}`,
			want:    func(c *Config) { c.RequestTimeout = 2 * time.Second },
		},
		{
			name:    "yaml",
			file:    "cfg.yaml",
			content: "origin: https://notes.example.org\nsession_db: /tmp/s.db\nrequest_timeout: 5s\n",
			want: func(c *Config) {
				c.Origin = "https://notes.example.org"
				c.SessionDB = "/tmp/s.db"
				c.RequestTimeout = 5 * time.Second
			},
		},
		{
			name:    "yml extension",
			file:    "cfg.YML",
			content: "log_level: debug\n",
			want:    func(c *Config) { c.LogLevel = "debug" },
		},
		{
			name:    "empty object keeps defaults",
			file:    "cfg.json",
			content: `{}`,
			want:    func(*Config) {},
		},
		{name: "invalid json", file: "cfg.json", content: `{ this is not valid json`, wantErr: true},
		{name: "invalid duration", file: "cfg.json", content: `{"request_timeout":true}`, wantErr: true},
		{name: "invalid yaml", file: "cfg.yaml", content: "request_timeout: [1, 2]\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg := defaults()
			err := parseFile(path, cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Equal(t, want, cfg)
		})
	}
}
