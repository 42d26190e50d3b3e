package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in fallbacks applied after every other source.
const (
	DefaultAdapterAddress   = "http://localhost:8000"
	DefaultGeocodingAddress = "https://maps.googleapis.com"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultDatabaseDSN      = "riegum-client.db"
	DefaultWatchInterval    = 5 * time.Minute
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, nil); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDatabaseDSN}},
		Adapter: Adapter{
			Address:          DefaultAdapterAddress,
			RequestTimeout:   DefaultRequestTimeout,
			GeocodingAddress: DefaultGeocodingAddress,
		},
		Workers: Workers{WatchInterval: DefaultWatchInterval},
	})
	return b
}
