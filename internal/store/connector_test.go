package store

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnector_ConcurrentOpenSharesOneConnection(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	connect := func(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
		calls.Add(1)
		<-release
		return NewConnectSQLite(ctx, cfg, log)
	}

	c := NewConnector(config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}, logger.Nop(), connect)
	t.Cleanup(func() { _ = c.Close() })

	const n = 8
	results := make([]*DB, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := c.Open(context.Background())
			assert.NoError(t, err)
			results[i] = db
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, db := range results {
		assert.Same(t, results[0], db)
	}

	// later calls reuse the cached connection
	db, err := c.Open(context.Background())
	require.NoError(t, err)
	assert.Same(t, results[0], db)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConnector_FailureIsNotCached(t *testing.T) {
	var calls atomic.Int32
	dsn := filepath.Join(t.TempDir(), "vault.db")

	connect := func(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
		if calls.Add(1) == 1 {
			return nil, ErrStorage
		}
		return NewConnectSQLite(ctx, cfg, log)
	}

	c := NewConnector(config.ClientDB{DSN: dsn}, logger.Nop(), connect)
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Open(context.Background())
	assert.ErrorIs(t, err, ErrStorage)

	db, err := c.Open(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConnector_CancelledCallerDoesNotFailOthers(t *testing.T) {
	var calls atomic.Int32
	var openErr atomic.Value
	release := make(chan struct{})

	connect := func(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
		calls.Add(1)
		<-release
		if err := ctx.Err(); err != nil {
			openErr.Store(err)
			return nil, err
		}
		return NewConnectSQLite(ctx, cfg, log)
	}

	c := NewConnector(config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}, logger.Nop(), connect)
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Open(ctx)
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	type result struct {
		db  *DB
		err error
	}
	second := make(chan result, 1)
	go func() {
		db, err := c.Open(context.Background())
		second <- result{db: db, err: err}
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.NotNil(t, res.db)
	assert.Nil(t, openErr.Load())
	assert.Equal(t, int32(1), calls.Load())
}

func TestConnector_CloseWithoutOpen(t *testing.T) {
	c := NewConnector(config.ClientDB{DSN: "unused.db"}, logger.Nop(), nil)
	assert.NoError(t, c.Close())
}

func TestNewConnectSQLite_CreatesMissingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "vault.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.FileExists(t, dsn)
	assert.Equal(t, 0, countRows(t, db.DB, StoreUserData))
}

func TestNewStorages(t *testing.T) {
	c := NewConnector(config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}, logger.Nop(), nil)
	t.Cleanup(func() { _ = c.Close() })

	s, err := NewStorages(context.Background(), c, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.AccountRepository)
	assert.NotNil(t, s.DoctorRepository)
	assert.NotNil(t, s.FeedCacheRepository)
}
