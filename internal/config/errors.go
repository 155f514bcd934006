package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidFeedConfigs indicates invalid feed settings.
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCryptoConfigs indicates a KDF iteration count below the
	// minimum.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
