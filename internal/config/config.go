// Package config loads the vetward client configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with mergo through a small builder.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the vetward
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote case-service endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings (the SQLite offline store).
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds background synchronisation settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the remote case service,
	// in "host:port" or full URL format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local durable store backing the operation
// queue and the read cache.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database file.
type DB struct {
	// DSN is the SQLite file path (e.g. "vetward.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds background synchronisation settings.
type Sync struct {
	// Interval is the fallback period between drain attempts while the
	// connectivity signal reports online but queued operations remain
	// (e.g. after a partial replay failure).
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetStructuredConfig loads and merges the client configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
