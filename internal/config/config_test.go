package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CARECOMPANION_API_URL", "https://api.carecompanion.example/api/v1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.carecompanion.example/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantErr: "api.baseurl is required",
		},
		{
			name:    "non-http base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "ftp://example.com" },
			wantErr: "api.baseurl must be an http(s) URL",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "api.timeout must be positive",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be json or console",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				API:     APIConfig{BaseURL: "http://localhost:8000/api/v1", Timeout: 10 * time.Second},
				Logging: LoggingConfig{Level: "info", Format: "json"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
