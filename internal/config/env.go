// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variables read:
//
//	CONFIG                         JSON config file path
//	STORAGE_DB_DSN                 sqlite file
//	BACKUP_DIR, BACKUP_DOWNLOAD_DIR
//	FEED_ADDRESS, FEED_SCRIPT_ID, FEED_REQUEST_TIMEOUT
//	WORKERS_BACKUP_CHECK_INTERVAL, WORKERS_BACKUP_MAX_AGE
//	CRYPTO_KDF_ITERATIONS
//
// Unset variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
