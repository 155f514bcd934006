package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
	"github.com/MKhiriev/go-patient-vault/models"
)

// verificationMarker is sealed under every account key at sign-up; login
// succeeds only if it decrypts back to exactly this value.
const verificationMarker = "verification"

type accountService struct {
	accounts  store.AccountRepository
	keyChain  crypto.KeyChain
	session   *session.Session
	validator validators.Validator
}

// NewAccountService constructs an [AccountService].
func NewAccountService(accounts store.AccountRepository, keyChain crypto.KeyChain, sess *session.Session, validator validators.Validator) AccountService {
	return &accountService{
		accounts:  accounts,
		keyChain:  keyChain,
		session:   sess,
		validator: validator,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, username, password string) (CreatedAccount, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return CreatedAccount{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return CreatedAccount{}, fmt.Errorf("error generating salt: %w", err)
	}

	key, err := s.keyChain.DeriveKey(password, salt)
	if err != nil {
		return CreatedAccount{}, fmt.Errorf("error deriving key: %w", err)
	}

	record, recoveryKey, err := s.newAccountRecord(salt, key)
	if err != nil {
		key.Destroy()
		return CreatedAccount{}, err
	}

	// Add fails atomically if the username is taken.
	if err = s.accounts.Create(ctx, username, record); err != nil {
		key.Destroy()
		err = mapStoreError(err)
		if !errors.Is(err, ErrDuplicateUser) {
			log.Err(err).Str("func", "*accountService.CreateAccount").Str("username", username).Msg("error saving account")
		}
		return CreatedAccount{}, err
	}

	sessionID := s.session.Start(username, key)
	log.Info().Str("username", username).Str("session", sessionID).Msg("account created")

	return CreatedAccount{Key: key, RecoveryKey: recoveryKey}, nil
}

func (s *accountService) newAccountRecord(salt []byte, key *crypto.Key) (models.AccountRecord, string, error) {
	verification, err := s.keyChain.Encrypt(verificationMarker, key)
	if err != nil {
		return models.AccountRecord{}, "", fmt.Errorf("error sealing verification marker: %w", err)
	}

	recoveryKey, err := s.keyChain.GenerateRecoveryKey()
	if err != nil {
		return models.AccountRecord{}, "", fmt.Errorf("error generating recovery key: %w", err)
	}

	sealedRecovery, err := s.keyChain.Encrypt(recoveryKey, key)
	if err != nil {
		return models.AccountRecord{}, "", fmt.Errorf("error sealing recovery key: %w", err)
	}

	return models.AccountRecord{
		Salt:                 salt,
		KeyVerification:      &verification,
		EncryptedRecoveryKey: &sealedRecovery,
		PersonalInfo:         nil,
		Notes:                []models.Note{},
		HealthData:           []models.HealthEntry{},
	}, recoveryKey, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (*crypto.Key, error) {
	log := logger.FromContext(ctx)

	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !record.HasCredentials() {
		return nil, ErrUserNotFound
	}

	key, err := s.keyChain.DeriveKey(password, record.Salt)
	if err != nil {
		return nil, fmt.Errorf("error deriving key: %w", err)
	}

	var marker string
	if err = s.keyChain.Decrypt(*record.KeyVerification, key, &marker); err != nil || marker != verificationMarker {
		key.Destroy()
		log.Warn().Str("func", "*accountService.Login").Str("username", username).Msg("password verification failed")
		return nil, ErrInvalidPassword
	}

	sessionID := s.session.Start(username, key)
	log.Info().Str("username", username).Str("session", sessionID).Msg("user logged in")

	return key, nil
}

func (s *accountService) Logout() {
	s.session.Clear()
}

func (s *accountService) CurrentUser() string {
	return s.session.Username()
}

func (s *accountService) RecoveryKey(ctx context.Context) (string, error) {
	username, key, ok := s.session.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}

	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return "", mapStoreError(err)
	}
	if record.EncryptedRecoveryKey == nil {
		return "", fmt.Errorf("%w: account has no recovery key", ErrUserNotFound)
	}

	var recoveryKey string
	if err = s.keyChain.Decrypt(*record.EncryptedRecoveryKey, key, &recoveryKey); err != nil {
		return "", mapDecryptError(err)
	}
	return recoveryKey, nil
}
