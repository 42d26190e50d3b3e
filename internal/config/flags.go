package config

import (
	"errors"
	"flag"
	"net/url"
	"strings"
	"time"
)

// APIAddress holds a validated http(s) base URL.
// It implements the flag.Value interface.
type APIAddress struct {
	Scheme string
	Host   string
	Path   string
}

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a Riegum API base URL (http[s]://host[:port][/prefix])
//	-t request timeout (e.g., "30s", "1m")
//	-d local database DSN
//	-k storage key used to seal persisted cookies
//	-l log file path
//	-geocoding-key Google Geocoding API key
//	-watch-interval watering watch job interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress APIAddress
	var requestTimeout time.Duration
	var databaseDSN string
	var storageKey string
	var logFile string
	var geocodingKey string
	var watchInterval time.Duration
	var jsonConfigPath string

	flag.Var(&apiAddress, "a", "Riegum API base URL")
	flag.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&storageKey, "k", "", "Storage key for persisted cookies")
	flag.StringVar(&logFile, "l", "", "Log file path")
	flag.StringVar(&geocodingKey, "geocoding-key", "", "Google Geocoding API key")
	flag.DurationVar(&watchInterval, "watch-interval", 0, "Watering watch interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			StorageKey: storageKey,
			LogFile:    logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			Address:         apiAddress.String(),
			RequestTimeout:  requestTimeout,
			GeocodingAPIKey: geocodingKey,
		},
		Workers:      Workers{WatchInterval: watchInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the base URL, or an empty string when unset.
func (a *APIAddress) String() string {
	if a.Host == "" {
		return ""
	}

	return a.Scheme + "://" + a.Host + a.Path
}

// Set parses s as an absolute http or https URL. A trailing slash is dropped
// so that API paths can be appended verbatim.
func (a *APIAddress) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need address in a form `http[s]://host[:port]`")
	}

	if u.Host == "" {
		return errors.New("address host is empty")
	}

	a.Scheme = u.Scheme
	a.Host = u.Host
	a.Path = strings.TrimSuffix(u.Path, "/")
	return nil
}
