package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
// Durations are written as strings ("30s", "24h").
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Backup struct {
		Dir         string `json:"dir"`
		DownloadDir string `json:"download_dir"`
	} `json:"backup,omitempty"`

	Feed struct {
		Address        string   `json:"address"`
		ScriptID       string   `json:"script_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"feed,omitempty"`

	Workers struct {
		BackupCheckInterval Duration `json:"backup_check_interval"`
		BackupMaxAge        Duration `json:"backup_max_age"`
	} `json:"workers,omitempty"`

	Crypto struct {
		KDFIterations int `json:"kdf_iterations"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Backup: Backup{
			Dir:         jsonCfg.Backup.Dir,
			DownloadDir: jsonCfg.Backup.DownloadDir,
		},
		Feed: Feed{
			Address:        jsonCfg.Feed.Address,
			ScriptID:       jsonCfg.Feed.ScriptID,
			RequestTimeout: time.Duration(jsonCfg.Feed.RequestTimeout),
		},
		Workers: Workers{
			BackupCheckInterval: time.Duration(jsonCfg.Workers.BackupCheckInterval),
			BackupMaxAge:        time.Duration(jsonCfg.Workers.BackupMaxAge),
		},
		Crypto: Crypto{
			KDFIterations: jsonCfg.Crypto.KDFIterations,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
