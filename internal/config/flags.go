package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from the process command line.
//
// Flags:
//
//	-d database DSN (sqlite file)
//	-b backup directory
//	-download-dir fallback backup directory
//	-feed-address feed base URL
//	-feed-script-id feed script id
//	-feed-timeout feed request timeout (e.g. "10s")
//	-backup-check-interval how often the backup job runs (e.g. "1h")
//	-backup-max-age backup age that triggers a new backup (e.g. "24h")
//	-kdf-iterations PBKDF2 iteration count
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault", flag.ContinueOnError)

	var databaseDSN string
	var backupDir, downloadDir string
	var feedAddress, feedScriptID string
	var feedTimeout time.Duration
	var checkInterval, maxAge time.Duration
	var kdfIterations int
	var jsonConfigPath string

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&backupDir, "b", "", "Backup directory")
	fs.StringVar(&downloadDir, "download-dir", "", "Fallback backup directory")
	fs.StringVar(&feedAddress, "feed-address", "", "Feed base URL")
	fs.StringVar(&feedScriptID, "feed-script-id", "", "Feed script id")
	fs.DurationVar(&feedTimeout, "feed-timeout", 0, "Feed request timeout (e.g., 10s)")
	fs.DurationVar(&checkInterval, "backup-check-interval", 0, "Backup check interval (e.g., 1h)")
	fs.DurationVar(&maxAge, "backup-max-age", 0, "Backup max age (e.g., 24h)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Backup: Backup{
			Dir:         backupDir,
			DownloadDir: downloadDir,
		},
		Feed: Feed{
			Address:        feedAddress,
			ScriptID:       feedScriptID,
			RequestTimeout: feedTimeout,
		},
		Workers: Workers{
			BackupCheckInterval: checkInterval,
			BackupMaxAge:        maxAge,
		},
		Crypto: Crypto{
			KDFIterations: kdfIterations,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
