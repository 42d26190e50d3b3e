// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// riegum client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the local storage key
	// and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local client database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the Riegum API address, the request timeout, and the
	// geocoding integration settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends used by the
// client.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// StorageKey is the secret the sealing key for persisted session cookies
	// is derived from. Must be kept confidential.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// LogFile is the path of the JSON log file. Empty means a file next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "riegum-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound integrations.
type Adapter struct {
	// Address is the base URL of the Riegum API (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// GeocodingAPIKey is the Google Geocoding API key. Empty disables
	// geocoding of outdoor locations.
	// Env: ADAPTER_GEOCODING_API_KEY
	GeocodingAPIKey string `env:"GEOCODING_API_KEY"`

	// GeocodingAddress overrides the Google Geocoding API base URL.
	// Env: ADAPTER_GEOCODING_ADDRESS
	GeocodingAddress string `env:"GEOCODING_ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// WatchInterval is how often the watering watch job polls plants.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
