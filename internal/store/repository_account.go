package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/models"
)

// accountRepository is the sqlite-backed implementation of
// [AccountRepository].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds record under username in a single read-write transaction, so
// two concurrent sign-ups for one name cannot both succeed.
func (r *accountRepository) Create(ctx context.Context, username string, record models.AccountRecord) error {
	log := logger.FromContext(ctx)

	err := r.db.Transaction(ctx, []string{StoreUserData}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreUserData)
		if err != nil {
			return err
		}
		return store.Add(ctx, username, record)
	})
	if err != nil {
		if !errors.Is(err, ErrKeyExists) {
			log.Err(err).Str("func", "*accountRepository.Create").Str("username", username).Msg("error creating account")
		}
		return err
	}

	return nil
}

func (r *accountRepository) Get(ctx context.Context, username string) (models.AccountRecord, error) {
	log := logger.FromContext(ctx)

	var record models.AccountRecord
	err := r.db.Transaction(ctx, []string{StoreUserData}, ReadOnly, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreUserData)
		if err != nil {
			return err
		}

		version, found, err := store.GetWithVersion(ctx, username, &record)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		record.Version = version
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*accountRepository.Get").Str("username", username).Msg("error reading account")
		}
		return models.AccountRecord{}, err
	}

	return record, nil
}

func (r *accountRepository) Put(ctx context.Context, username string, record models.AccountRecord) error {
	log := logger.FromContext(ctx)

	err := r.db.Transaction(ctx, []string{StoreUserData}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreUserData)
		if err != nil {
			return err
		}
		return store.Put(ctx, username, record)
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Put").Str("username", username).Msg("error writing account")
		return err
	}

	return nil
}

func (r *accountRepository) UpdateData(ctx context.Context, username string, data models.Envelope, expectedVersion int64) (int64, error) {
	var newVersion int64
	err := r.modify(ctx, username, func(record *models.AccountRecord) error {
		if record.Version != expectedVersion {
			return ErrVersionConflict
		}
		record.Data = &data
		return nil
	}, &newVersion)
	if err != nil {
		return 0, err
	}
	return newVersion, nil
}

func (r *accountRepository) SetLastBackup(ctx context.Context, username string, at time.Time) error {
	return r.modify(ctx, username, func(record *models.AccountRecord) error {
		at := at.UTC()
		record.LastBackupAt = &at
		return nil
	}, nil)
}

// modify reads the account, applies fn and writes it back guarded by the
// version stamp, all inside one transaction.
func (r *accountRepository) modify(ctx context.Context, username string, fn func(*models.AccountRecord) error, newVersion *int64) error {
	log := logger.FromContext(ctx)

	err := r.db.Transaction(ctx, []string{StoreUserData}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreUserData)
		if err != nil {
			return err
		}

		var record models.AccountRecord
		version, found, err := store.GetWithVersion(ctx, username, &record)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		record.Version = version

		if err = fn(&record); err != nil {
			return err
		}

		v, err := store.PutIfVersion(ctx, username, record, version)
		if err != nil {
			return err
		}
		if newVersion != nil {
			*newVersion = v
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrVersionConflict) {
			log.Err(err).Str("func", "*accountRepository.modify").Str("username", username).Msg("error updating account")
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}
