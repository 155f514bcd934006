package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
	"github.com/MKhiriev/go-patient-vault/models"
)

type doctorService struct {
	doctors   store.DoctorRepository
	keyChain  crypto.KeyChain
	validator validators.Validator
}

// NewDoctorService constructs a [DoctorService].
func NewDoctorService(doctors store.DoctorRepository, keyChain crypto.KeyChain, validator validators.Validator) DoctorService {
	return &doctorService{
		doctors:   doctors,
		keyChain:  keyChain,
		validator: validator,
	}
}

// CreateDoctorAccount stores a new pending doctor account. The returned
// token is sealed under the password-derived key and must be handed to an
// administrator for approval.
func (s *doctorService) CreateDoctorAccount(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Credentials{Username: username, Password: password}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	salt, err := s.keyChain.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key, err := s.keyChain.DeriveKey(password, salt)
	if err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}
	defer key.Destroy()

	token, err := s.keyChain.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("error generating doctor token: %w", err)
	}

	sealed, err := s.keyChain.Encrypt(token, key)
	if err != nil {
		return "", fmt.Errorf("error sealing doctor token: %w", err)
	}

	err = s.doctors.Create(ctx, username, models.DoctorRecord{
		Salt:           salt,
		EncryptedToken: &sealed,
		TokenStatus:    models.DoctorTokenPending,
	})
	if err != nil {
		err = mapStoreError(err)
		if !errors.Is(err, ErrDuplicateUser) {
			log.Err(err).Str("func", "*doctorService.CreateDoctorAccount").Str("username", username).Msg("error saving doctor account")
		}
		return "", err
	}

	log.Info().Str("username", username).Msg("doctor account created, pending approval")
	return token, nil
}

func (s *doctorService) LoginDoctor(ctx context.Context, username, password string) (models.DoctorSession, error) {
	record, err := s.doctors.Get(ctx, username)
	if err != nil {
		return models.DoctorSession{}, mapStoreError(err)
	}
	if len(record.Salt) == 0 || record.EncryptedToken == nil {
		return models.DoctorSession{}, ErrUserNotFound
	}

	key, err := s.keyChain.DeriveKey(password, record.Salt)
	if err != nil {
		return models.DoctorSession{}, fmt.Errorf("error deriving key: %w", err)
	}
	defer key.Destroy()

	var token string
	if err = s.keyChain.Decrypt(*record.EncryptedToken, key, &token); err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*doctorService.LoginDoctor").Str("username", username).Msg("password verification failed")
		return models.DoctorSession{}, ErrInvalidPassword
	}

	return models.DoctorSession{Token: token, TokenStatus: record.TokenStatus}, nil
}

func (s *doctorService) ApproveDoctor(ctx context.Context, username string) error {
	if err := s.doctors.SetStatus(ctx, username, models.DoctorTokenApproved); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("doctor approved")
	return nil
}
