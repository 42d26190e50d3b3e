package config

import "errors"

// Returned by [ClientConfig.validate], possibly wrapped with the offending
// setting.
var (
	// ErrInvalidAdapterConfigs: API address missing or without a scheme,
	// or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: empty DSN, or an in-memory DSN that would
	// lose the session on exit.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: no key to seal the stored cookies with.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: non-positive watering watch interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
