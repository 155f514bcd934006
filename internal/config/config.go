// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// patient vault. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the on-device object store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backup holds the encrypted backup file destinations.
	Backup Backup `envPrefix:"BACKUP_"`

	// Feed holds the remote article/request feed settings.
	Feed Feed `envPrefix:"FEED_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Crypto holds key derivation parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path (e.g. "./patient_vault.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Backup holds the locations encrypted backups are written to.
type Backup struct {
	// Dir is the preferred backup directory.
	// Env: BACKUP_DIR
	Dir string `env:"DIR"`

	// DownloadDir is used when Dir is unset or cannot be written.
	// Env: BACKUP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Feed holds the remote feed endpoint settings.
type Feed struct {
	// Address is the base URL of the feed backend. Empty disables remote
	// calls; cached content is still shown.
	// Env: FEED_ADDRESS
	Address string `env:"ADDRESS"`

	// ScriptID is sent as script_id with every call.
	// Env: FEED_SCRIPT_ID
	ScriptID string `env:"SCRIPT_ID"`

	// RequestTimeout bounds a single outbound call.
	// Env: FEED_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupCheckInterval is how often the backup job checks whether a
	// backup is due.
	// Env: WORKERS_BACKUP_CHECK_INTERVAL
	BackupCheckInterval time.Duration `env:"BACKUP_CHECK_INTERVAL"`

	// BackupMaxAge is the age after which a new backup is taken.
	// Env: WORKERS_BACKUP_MAX_AGE
	BackupMaxAge time.Duration `env:"BACKUP_MAX_AGE"`
}

// Crypto holds key derivation settings.
type Crypto struct {
	// KDFIterations is the PBKDF2 iteration count.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
