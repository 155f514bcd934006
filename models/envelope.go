// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// ByteArray is a byte slice that is encoded in JSON as an array of numbers
// (e.g. [12,255,0]) instead of the default base64 string. Backup files and
// stored records share this representation.
type ByteArray []byte

// MarshalJSON encodes the bytes as a JSON array of integers in 0..255.
func (b ByteArray) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON decodes a JSON array of integers into bytes. Every element
// must fit into a byte.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*b = nil
		return nil
	}

	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte array element %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// Envelope is one ciphertext unit: a fresh 12-byte IV and the AEAD output
// (ciphertext with the authentication tag appended).
type Envelope struct {
	IV            ByteArray `json:"iv"`
	EncryptedData ByteArray `json:"encryptedData"`
}

// IsZero reports whether the envelope carries no ciphertext.
func (e Envelope) IsZero() bool {
	return len(e.IV) == 0 && len(e.EncryptedData) == 0
}
