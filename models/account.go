// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountRecord is the per-username record kept in the "userdata" object
// store. Only Data holds application data; the remaining legacy fields are
// written empty when the account is created and never read back.
type AccountRecord struct {
	// Salt is the 32-byte random KDF salt, fixed at account creation.
	Salt ByteArray `json:"salt"`

	// KeyVerification is the ciphertext of the marker string "verification"
	// under the account key. Login succeeds only if it decrypts.
	KeyVerification *Envelope `json:"keyVerification,omitempty"`

	// EncryptedRecoveryKey seals the hex recovery key under the account key.
	EncryptedRecoveryKey *Envelope `json:"encryptedRecoveryKey,omitempty"`

	// Data is the ciphertext of the whole [UserData] payload.
	Data *Envelope `json:"data,omitempty"`

	PersonalInfo *PersonalInfo `json:"personalInfo"`
	Notes        []Note        `json:"notes"`
	HealthData   []HealthEntry `json:"healthData"`

	// LastBackupAt is the time of the last successful backup, if any.
	LastBackupAt *time.Time `json:"lastBackupAt,omitempty"`

	// Version is the optimistic-concurrency stamp of the stored row. It is
	// kept outside the JSON value and filled in by the store.
	Version int64 `json:"-"`
}

// HasCredentials reports whether the record can be used for login.
func (r AccountRecord) HasCredentials() bool {
	return len(r.Salt) > 0 && r.KeyVerification != nil && !r.KeyVerification.IsZero()
}

// Credentials is the username/password pair submitted at sign-up or login.
type Credentials struct {
	Username string
	Password string
}
