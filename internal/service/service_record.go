package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/models"
)

type recordService struct {
	accounts store.AccountRepository
	keyChain crypto.KeyChain
	locks    *userLocks
}

// NewRecordService constructs a [RecordService]. locks is shared with every
// other service that rewrites account records.
func NewRecordService(accounts store.AccountRepository, keyChain crypto.KeyChain, locks *userLocks) RecordService {
	if locks == nil {
		locks = newUserLocks()
	}
	return &recordService{
		accounts: accounts,
		keyChain: keyChain,
		locks:    locks,
	}
}

func (s *recordService) SaveData(ctx context.Context, username string, data models.UserData, key *crypto.Key) error {
	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return err
	}
	defer unlock()

	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return mapStoreError(err)
	}

	return s.write(ctx, username, record.Version, data, key)
}

func (s *recordService) LoadData(ctx context.Context, username string, key *crypto.Key) (*models.UserData, error) {
	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return s.decode(record, key)
}

func (s *recordService) Update(ctx context.Context, username string, key *crypto.Key, fn func(*models.UserData) error) (*models.UserData, error) {
	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return nil, err
	}
	defer unlock()

	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}

	data, err := s.decode(record, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.UserData{}
	}
	data.Normalize()

	if err = fn(data); err != nil {
		return nil, err
	}

	if err = s.write(ctx, username, record.Version, *data, key); err != nil {
		return nil, err
	}
	return data, nil
}

// decode returns nil, nil when the record carries no data yet.
func (s *recordService) decode(record models.AccountRecord, key *crypto.Key) (*models.UserData, error) {
	if record.Data == nil || record.Data.IsZero() {
		return nil, nil
	}

	var data models.UserData
	if err := s.keyChain.Decrypt(*record.Data, key, &data); err != nil {
		return nil, mapDecryptError(err)
	}
	data.Normalize()
	return &data, nil
}

// write seals data and stores it only if the record still has version.
func (s *recordService) write(ctx context.Context, username string, version int64, data models.UserData, key *crypto.Key) error {
	env, err := s.keyChain.Encrypt(data, key)
	if err != nil {
		return fmt.Errorf("error encrypting user data: %w", err)
	}

	if _, err = s.accounts.UpdateData(ctx, username, env, version); err != nil {
		err = mapStoreError(err)
		logger.FromContext(ctx).Err(err).Str("func", "*recordService.write").Str("username", username).Msg("error saving user data")
		return err
	}
	return nil
}
