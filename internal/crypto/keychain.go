// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-patient-vault/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used in production.
	DefaultIterations = 600_000

	// SaltSize is the per-account salt size in bytes.
	SaltSize = 32

	// IVSize is the AES-GCM nonce size in bytes.
	IVSize = 12

	recoveryKeySize = 32
	tokenSize       = 16
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	iterations int
	random     io.Reader
}

// Option customizes a [KeyChain].
type Option func(*keyChain)

// WithIterations overrides the PBKDF2 iteration count. Values below 1 are
// ignored. Intended for tests; production code uses [DefaultIterations].
func WithIterations(n int) Option {
	return func(k *keyChain) {
		if n > 0 {
			k.iterations = n
		}
	}
}

// WithRandom replaces the randomness source.
func WithRandom(r io.Reader) Option {
	return func(k *keyChain) {
		if r != nil {
			k.random = r
		}
	}
}

// NewKeyChain constructs a [KeyChain] using PBKDF2-HMAC-SHA256 with
// [DefaultIterations] iterations and AES-256-GCM.
func NewKeyChain(opts ...Option) KeyChain {
	k := &keyChain{
		iterations: DefaultIterations,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// GenerateSalt implements [KeyChain].
func (k *keyChain) GenerateSalt() ([]byte, error) {
	return k.randomBytes(SaltSize)
}

// DeriveKey implements [KeyChain]. The password is encoded as UTF-8.
func (k *keyChain) DeriveKey(password string, salt []byte) (*Key, error) {
	if len(salt) == 0 {
		return nil, errors.New("empty salt")
	}
	material := pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
	return newKey(material), nil
}

// Encrypt implements [KeyChain].
func (k *keyChain) Encrypt(v any, key *Key) (models.Envelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal data: %w", err)
	}

	// 2. Build AES-GCM from the key
	gcm, err := key.aead()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create gcm: %w", err)
	}

	// 3. Fresh IV on every call
	iv, err := k.randomBytes(IVSize)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	return models.Envelope{
		IV:            iv,
		EncryptedData: gcm.Seal(nil, iv, plaintext, nil),
	}, nil
}

// Decrypt implements [KeyChain].
func (k *keyChain) Decrypt(env models.Envelope, key *Key, target any) error {
	gcm, err := key.aead()
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	if len(env.IV) != gcm.NonceSize() || len(env.EncryptedData) < gcm.Overhead() {
		return ErrAuthentication
	}

	// An error here almost always means a wrong key (wrong password) or a
	// corrupted record.
	plaintext, err := gcm.Open(nil, env.IV, env.EncryptedData, nil)
	if err != nil {
		return ErrAuthentication
	}

	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPlaintext, err)
	}

	return nil
}

// GenerateRecoveryKey implements [KeyChain].
func (k *keyChain) GenerateRecoveryKey() (string, error) {
	b, err := k.randomBytes(recoveryKeySize)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateToken implements [KeyChain].
func (k *keyChain) GenerateToken() (string, error) {
	b, err := k.randomBytes(tokenSize)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// KeyFromRecoveryKey implements [KeyChain]. The recovery key bytes are used
// directly as the AES-256 key.
func (k *keyChain) KeyFromRecoveryKey(recoveryKey string) (*Key, error) {
	if len(recoveryKey) != recoveryKeySize*2 {
		return nil, ErrInvalidRecoveryKey
	}
	material, err := hex.DecodeString(recoveryKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecoveryKey, err)
	}
	return newKey(material), nil
}

func (k *keyChain) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.random, b); err != nil {
		return nil, err
	}
	return b, nil
}
