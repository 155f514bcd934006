package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"golang.org/x/sync/singleflight"
)

// ConnectFunc opens a database connection. [NewConnectSQLite] in production.
type ConnectFunc func(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error)

// Connector opens the database at most once. Callers racing on the first
// Open share one in-flight attempt and all receive the same *DB. A failed
// attempt is not cached; the next Open tries again.
type Connector struct {
	cfg     config.ClientDB
	log     *logger.Logger
	connect ConnectFunc

	group singleflight.Group
	mu    sync.RWMutex
	db    *DB
}

// NewConnector returns a Connector for cfg. A nil connect uses
// [NewConnectSQLite].
func NewConnector(cfg config.ClientDB, log *logger.Logger, connect ConnectFunc) *Connector {
	if connect == nil {
		connect = NewConnectSQLite
	}
	return &Connector{cfg: cfg, log: log, connect: connect}
}

// Open returns the shared connection, opening it on first use.
func (c *Connector) Open(ctx context.Context) (*DB, error) {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	// The open outlives any single caller; each caller only stops waiting on
	// its own ctx.
	openCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("open", func() (any, error) {
		c.mu.RLock()
		db := c.db
		c.mu.RUnlock()
		if db != nil {
			return db, nil
		}

		db, err := c.connect(openCtx, c.cfg, c.log)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*DB), nil
	}
}

// Close closes the connection if it was opened.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
