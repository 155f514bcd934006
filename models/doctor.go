// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Doctor token statuses.
const (
	DoctorTokenPending  = "pending"
	DoctorTokenApproved = "approved"
)

// DoctorRecord is the per-username record kept in the "doctordata" object
// store.
type DoctorRecord struct {
	Salt           ByteArray `json:"salt"`
	EncryptedToken *Envelope `json:"encryptedToken,omitempty"`
	TokenStatus    string    `json:"tokenStatus"`
}

// DoctorSession is returned by a successful doctor login.
type DoctorSession struct {
	Token       string
	TokenStatus string
}
