package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPIAddress_Set tests the Set method of APIAddress
func TestAPIAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
		expected    string
	}{
		{
			name:     "http with port",
			input:    "http://localhost:8000",
			expected: "http://localhost:8000",
		},
		{
			name:     "https without port",
			input:    "https://riegum.example",
			expected: "https://riegum.example",
		},
		{
			name:     "trailing slash trimmed",
			input:    "https://riegum.example/",
			expected: "https://riegum.example",
		},
		{
			name:     "path prefix kept",
			input:    "https://riegum.example/backend/",
			expected: "https://riegum.example/backend",
		},
		{
			name:        "missing scheme",
			input:       "localhost:8000",
			expectError: true,
			errorMsg:    "need address in a form",
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://riegum.example",
			expectError: true,
			errorMsg:    "need address in a form",
		},
		{
			name:        "empty host",
			input:       "http://",
			expectError: true,
			errorMsg:    "address host is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &APIAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, addr.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "http://127.0.0.1:8000/",
				"-t", "10s",
				"-d", "/tmp/client.db",
				"-k", "storage_secret",
				"-l", "/tmp/client.log",
				"-geocoding-key", "geo",
				"-watch-interval", "1m",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://127.0.0.1:8000", cfg.Adapter.Address)
				assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "storage_secret", cfg.App.StorageKey)
				assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
				assert.Equal(t, "geo", cfg.Adapter.GeocodingAPIKey)
				assert.Equal(t, time.Minute, cfg.Workers.WatchInterval)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Adapter.Address)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Adapter.RequestTimeout)
				assert.Zero(t, cfg.Workers.WatchInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCommandLine(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
