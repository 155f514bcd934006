package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"storage": { "db": { "dsn": "/data/vault.db" } },
		"backup": { "dir": "/data/backups", "download_dir": "/home/me/Downloads" },
		"feed": {
			"address": "https://feed.example.com",
			"script_id": "hospital_script",
			"request_timeout": "20s"
		},
		"workers": { "backup_check_interval": "15m", "backup_max_age": "48h" },
		"crypto": { "kdf_iterations": 800000 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/data/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/backups", cfg.Backup.Dir)
	assert.Equal(t, "/home/me/Downloads", cfg.Backup.DownloadDir)
	assert.Equal(t, "https://feed.example.com", cfg.Feed.Address)
	assert.Equal(t, "hospital_script", cfg.Feed.ScriptID)
	assert.Equal(t, 20*time.Second, cfg.Feed.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Workers.BackupCheckInterval)
	assert.Equal(t, 48*time.Hour, cfg.Workers.BackupMaxAge)
	assert.Equal(t, 800000, cfg.Crypto.KDFIterations)
	assert.Empty(t, cfg.JSONFilePath, "JSON file path is never taken from the file itself")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"storage":`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
