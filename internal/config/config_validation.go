// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Missing values are allowed here; defaults are applied
// when the client view is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.KDFIterations < 0 {
		return fmt.Errorf("%w: negative kdf iterations", ErrInvalidCryptoConfigs)
	}
	if cfg.Workers.BackupCheckInterval < 0 || cfg.Workers.BackupMaxAge < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Feed.Address != "" {
		u, err := url.Parse(cfg.Feed.Address)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad address %q", ErrInvalidFeedConfigs, cfg.Feed.Address)
		}
	}
	if cfg.Feed.RequestTimeout <= 0 || cfg.Feed.ScriptID == "" {
		return ErrInvalidFeedConfigs
	}

	if cfg.Workers.BackupCheckInterval <= 0 || cfg.Workers.BackupMaxAge <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Crypto.KDFIterations < MinKDFIterations {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
