// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that can never
// work regardless of which view is built from it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Workers.WatchInterval < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if u, err := url.Parse(cfg.Adapter.Address); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: adapter address must be an http(s) URL", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.WatchInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.StorageKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
