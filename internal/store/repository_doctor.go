package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/models"
)

type doctorRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDoctorRepository constructs a [DoctorRepository] over db.
func NewDoctorRepository(db *DB, logger *logger.Logger) DoctorRepository {
	logger.Debug().Msg("creating doctor repository")
	return &doctorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *doctorRepository) Create(ctx context.Context, username string, record models.DoctorRecord) error {
	log := logger.FromContext(ctx)

	err := r.db.Transaction(ctx, []string{StoreDoctorData}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreDoctorData)
		if err != nil {
			return err
		}
		return store.Add(ctx, username, record)
	})
	if err != nil && !errors.Is(err, ErrKeyExists) {
		log.Err(err).Str("func", "*doctorRepository.Create").Str("username", username).Msg("error creating doctor account")
	}
	return err
}

func (r *doctorRepository) Get(ctx context.Context, username string) (models.DoctorRecord, error) {
	var record models.DoctorRecord
	err := r.db.Transaction(ctx, []string{StoreDoctorData}, ReadOnly, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreDoctorData)
		if err != nil {
			return err
		}

		found, err := store.Get(ctx, username, &record)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return models.DoctorRecord{}, err
	}
	return record, nil
}

func (r *doctorRepository) SetStatus(ctx context.Context, username, status string) error {
	log := logger.FromContext(ctx)

	err := r.db.Transaction(ctx, []string{StoreDoctorData}, ReadWrite, func(ctx context.Context, tx Tx) error {
		store, err := tx.ObjectStore(StoreDoctorData)
		if err != nil {
			return err
		}

		var record models.DoctorRecord
		found, err := store.Get(ctx, username, &record)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		record.TokenStatus = status
		return store.Put(ctx, username, record)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*doctorRepository.SetStatus").Str("username", username).Msg("error updating doctor status")
		}
		return fmt.Errorf("set doctor status: %w", err)
	}
	return nil
}
