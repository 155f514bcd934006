package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/migrations"
	"github.com/sethvargo/go-retry"
)

// Object store names. Each is one sqlite table created by migrations.
const (
	StoreUserData   = "userdata"
	StoreDoctorData = "doctordata"
	StoreFeedCache  = "feedcache"
)

var knownStores = map[string]struct{}{
	StoreUserData:   {},
	StoreDoctorData: {},
	StoreFeedCache:  {},
}

// Mode is the access mode of a transaction.
type Mode int

const (
	// ReadOnly transactions reject every write.
	ReadOnly Mode = iota
	// ReadWrite transactions may read and write the declared stores.
	ReadWrite
)

func (m Mode) String() string {
	if m == ReadWrite {
		return "readwrite"
	}
	return "readonly"
}

const (
	defaultTxRetries   = 3
	defaultTxRetryBase = 20 * time.Millisecond
)

// DB is the on-device transactional key-value engine: a set of named object
// stores backed by sqlite tables.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	txRetries   uint64
	txRetryBase time.Duration
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
		txRetries:          defaultTxRetries,
		txRetryBase:        defaultTxRetryBase,
	}
}

// Migrate upgrades the schema, creating missing object stores.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Transaction runs fn inside one database transaction scoped to stores.
// The transaction commits when fn returns nil and rolls back otherwise.
// Busy/locked failures are retried with exponential backoff.
func (db *DB) Transaction(ctx context.Context, stores []string, mode Mode, fn func(ctx context.Context, tx Tx) error) error {
	scope := make(map[string]struct{}, len(stores))
	for _, name := range stores {
		if _, ok := knownStores[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownObjectStore, name)
		}
		scope[name] = struct{}{}
	}

	backoff := retry.WithMaxRetries(db.txRetries, retry.NewExponential(db.txRetryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, scope, mode, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "*DB.Transaction").Msg("database busy, retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, scope map[string]struct{}, mode Mode, fn func(ctx context.Context, tx Tx) error) (err error) {
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.runTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrBeginningTransaction, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.Err(rbErr).Str("func", "*DB.runTx").Msg("error rolling back transaction")
		}
	}()

	if err = fn(ctx, &tx{sqlTx: sqlTx, scope: scope, mode: mode}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		db.logger.Err(err).Str("func", "*DB.runTx").Msg("error committing transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorage, ErrCommitingTransaction, err)
	}
	committed = true

	return nil
}
