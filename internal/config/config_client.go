package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// StorageKey seeds the key that seals persisted session cookies.
	StorageKey string
	// LogFile is where the client writes its JSON log.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Address is the Riegum API base URL.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// GeocodingAPIKey enables outdoor location lookups when non-empty.
	GeocodingAPIKey string
	// GeocodingAddress is the geocoding API base URL.
	GeocodingAddress string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// WatchInterval defines how often the watering watch job runs.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.client()

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) client() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StorageKey: cfg.App.StorageKey,
			LogFile:    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			Address:          cfg.Adapter.Address,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			GeocodingAPIKey:  cfg.Adapter.GeocodingAPIKey,
			GeocodingAddress: cfg.Adapter.GeocodingAddress,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{WatchInterval: cfg.Workers.WatchInterval},
	}
}
