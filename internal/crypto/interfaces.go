// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements all client-side cryptography of the vault:
// password-based key derivation and authenticated encryption of
// JSON-serializable records. It knows nothing about storage, sessions or
// users; its only job is to derive keys and seal/open envelopes.
//
// Scheme:
//
//	Salt        = GenerateSalt()                          (32 bytes, per account)
//	Key         = DeriveKey(password, Salt)               (PBKDF2-HMAC-SHA256, 600 000 iterations)
//	Envelope    = Encrypt(value, Key)                     (AES-256-GCM, fresh 12-byte IV)
//	RecoveryKey = GenerateRecoveryKey()                   (32 random bytes, hex)
//	BackupKey   = KeyFromRecoveryKey(RecoveryKey)
package crypto

import "github.com/MKhiriev/go-patient-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain derives keys and seals/opens [models.Envelope] values.
type KeyChain interface {
	// GenerateSalt returns 32 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches password and salt into a 256-bit AES key with
	// PBKDF2-HMAC-SHA256. Deterministic for identical inputs.
	DeriveKey(password string, salt []byte) (*Key, error)

	// Encrypt serializes v to JSON and seals it with AES-256-GCM under key
	// using a fresh random IV.
	Encrypt(v any, key *Key) (models.Envelope, error)

	// Decrypt opens env with key and unmarshals the plaintext JSON into
	// target (a non-nil pointer). Returns [ErrAuthentication] if the
	// envelope was tampered with or key is wrong.
	Decrypt(env models.Envelope, key *Key, target any) error

	// GenerateRecoveryKey returns 32 random bytes, hex-encoded.
	GenerateRecoveryKey() (string, error)

	// GenerateToken returns 16 random bytes, hex-encoded.
	GenerateToken() (string, error)

	// KeyFromRecoveryKey turns a hex recovery key into an encryption key.
	KeyFromRecoveryKey(recoveryKey string) (*Key, error)
}
