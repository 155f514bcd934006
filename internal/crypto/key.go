// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"sync"
)

// KeySize is the size of every symmetric key in bytes (AES-256).
const KeySize = 32

// Key is an opaque symmetric key usable only for Encrypt/Decrypt within this
// package. The raw bytes are never exposed. All holders of the same *Key see
// the effect of Destroy.
type Key struct {
	mu       sync.RWMutex
	material []byte
}

func newKey(material []byte) *Key {
	return &Key{material: material}
}

// Destroy zeroes the key material. Any later use of the key fails with
// [ErrInvalidKey]. Safe to call more than once and on a nil key.
func (k *Key) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
}

// Destroyed reports whether the key can no longer be used.
func (k *Key) Destroyed() bool {
	if k == nil {
		return true
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.material) != KeySize
}

// aead builds an AES-256-GCM instance from the key.
func (k *Key) aead() (cipher.AEAD, error) {
	if k == nil {
		return nil, ErrInvalidKey
	}
	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.material) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(k.material)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
