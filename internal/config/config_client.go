package config

import (
	"fmt"
	"time"
)

// Client defaults applied when no source sets a value.
const (
	DefaultDSN                 = "patient_vault.db"
	DefaultDownloadDir         = "."
	DefaultFeedScriptID        = "hospital_script"
	DefaultFeedRequestTimeout  = 10 * time.Second
	DefaultBackupCheckInterval = time.Hour
	DefaultBackupMaxAge        = 24 * time.Hour

	// MinKDFIterations is both the default and the lowest accepted PBKDF2
	// iteration count.
	MinKDFIterations = 600_000
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientBackup holds backup destinations.
type ClientBackup struct {
	// Dir is the preferred backup directory; may be empty.
	Dir string
	// DownloadDir is the fallback destination.
	DownloadDir string
}

// ClientFeed holds remote feed settings.
type ClientFeed struct {
	// Address is the feed base URL; empty means offline.
	Address string
	// ScriptID is sent with every feed call.
	ScriptID string
	// RequestTimeout bounds one feed call.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BackupCheckInterval defines how often the backup job runs.
	BackupCheckInterval time.Duration
	// BackupMaxAge is the backup age that triggers a new backup.
	BackupMaxAge time.Duration
}

// ClientCrypto holds key derivation settings.
type ClientCrypto struct {
	KDFIterations int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Storage ClientStorage
	Backup  ClientBackup
	Feed    ClientFeed
	Workers ClientWorkers
	Crypto  ClientCrypto
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration, applying defaults for unset values.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Storage: ClientStorage{
			DB: ClientDB{DSN: orDefault(cfg.Storage.DB.DSN, DefaultDSN)},
		},
		Backup: ClientBackup{
			Dir:         cfg.Backup.Dir,
			DownloadDir: orDefault(cfg.Backup.DownloadDir, DefaultDownloadDir),
		},
		Feed: ClientFeed{
			Address:        cfg.Feed.Address,
			ScriptID:       orDefault(cfg.Feed.ScriptID, DefaultFeedScriptID),
			RequestTimeout: orDefault(cfg.Feed.RequestTimeout, DefaultFeedRequestTimeout),
		},
		Workers: ClientWorkers{
			BackupCheckInterval: orDefault(cfg.Workers.BackupCheckInterval, DefaultBackupCheckInterval),
			BackupMaxAge:        orDefault(cfg.Workers.BackupMaxAge, DefaultBackupMaxAge),
		},
		Crypto: ClientCrypto{
			KDFIterations: orDefault(cfg.Crypto.KDFIterations, MinKDFIterations),
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
