package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a real, migrated sqlite database in a temp dir.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// newMockDB wraps sqlmock in a *DB with fast, short retries.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, logger.Nop())
	db.txRetries = 2
	db.txRetryBase = 1
	return db, mock
}

func countRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
