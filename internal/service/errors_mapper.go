package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/store"
)

// mapStoreError translates repository sentinels into service errors.
// Storage failures keep their [ErrStorage] chain.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrKeyExists):
		return ErrDuplicateUser
	default:
		return err
	}
}

// mapDecryptError folds every failure to open stored data into
// [ErrDecryption]. Key problems other than authentication are returned as is.
func mapDecryptError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrAuthentication), errors.Is(err, crypto.ErrMalformedPlaintext):
		return ErrDecryption
	default:
		return fmt.Errorf("decrypt: %w", err)
	}
}
