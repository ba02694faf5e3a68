// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// metadata console. It is populated by merging command-line flags,
// environment variables, an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation and logging settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the HTTP client talking to the catalog.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Locale selects the message catalog ("en", "ko").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// LogFile is the path of the JSON log file. The terminal UI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", …).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound catalog client.
type Adapter struct {
	// HTTPAddress is the catalog base URL (e.g. "http://localhost:8180").
	// A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries for idempotent reads that fail
	// with a connection error.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the local storage settings.
type Storage struct {
	// Cache holds the recently-viewed records cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Cache holds the SQLite cache of recently viewed records.
type Cache struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`

	// MaxAge is how long a cached record is kept before pruning.
	// Env: STORAGE_CACHE_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`
}

// Workers holds background job settings.
type Workers struct {
	// CachePruneInterval is how often stale cache rows are removed.
	// Env: WORKERS_CACHE_PRUNE_INTERVAL
	CachePruneInterval time.Duration `env:"CACHE_PRUNE_INTERVAL"`
}

// Defaults returns the built-in configuration used for every field no other
// source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:   "en",
			LogLevel: "info",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8180",
			RequestTimeout: 10 * time.Second,
			RetryCount:     2,
		},
		Storage: Storage{
			Cache: Cache{
				DSN:    "metadata-cache.db",
				MaxAge: 7 * 24 * time.Hour,
			},
		},
		Workers: Workers{
			CachePruneInterval: time.Hour,
		},
	}
}

// Load assembles, merges and validates the configuration. Sources are
// consulted in priority order; the first non-zero value of a field wins:
//  1. Command-line flags (flags may be nil)
//  2. Environment variables (a .env file in the working directory is loaded first)
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. [Defaults]
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		withDefaults().
		build()
}
