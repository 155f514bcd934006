// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// terminal UI.
//
// All Msg* constants are human-readable message strings shown to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across screens. [HumanizeError] picks the message for
// an error returned by the service layer.
package app

import (
	"errors"

	"github.com/MKhiriev/go-patient-vault/internal/service"
)

const (
	// MsgInvalidDataProvided is shown when input fails validation. The
	// validator's own message is appended.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIncorrectCredentials is shown both for a wrong password and for
	// data that does not decrypt, so the two cannot be told apart.
	MsgIncorrectCredentials = "incorrect username/password or unreadable data"

	// MsgUserNotFound is shown when logging in to an unknown account.
	MsgUserNotFound = "user not found"

	// MsgLoginAlreadyExists is shown when signing up with a taken username.
	MsgLoginAlreadyExists = "username already exists"

	// MsgRestoreFailed is shown for unreadable backups or a wrong recovery
	// key.
	MsgRestoreFailed = "failed to restore from backup"

	// MsgBackupFailed is shown when no backup destination could be written.
	MsgBackupFailed = "failed to create backup"

	// MsgNotSignedIn is shown when an action needs a signed-in user.
	MsgNotSignedIn = "please sign in first"

	// MsgNoteNotFound is shown when the selected note no longer exists.
	MsgNoteNotFound = "note not found"

	// MsgNothingToExport is shown when no export section is selected.
	MsgNothingToExport = "select at least one section to export"

	// MsgVersionConflict is shown when the record changed during a write.
	MsgVersionConflict = "data changed while saving, please try again"

	// MsgStorageError is shown for failures of the on-device database.
	MsgStorageError = "local storage error"

	// MsgInternalError is shown for anything unexpected.
	MsgInternalError = "something went wrong"

	// MsgRecoveryKeyNotice accompanies the recovery key after sign-up.
	MsgRecoveryKeyNotice = "Write this recovery key down and keep it safe. It is shown only once and is the only way to open your backups."

	// MsgBackupReminder is shown on the dashboard when no backup was made
	// within service.BackupReminderAge.
	MsgBackupReminder = "Please verify your recovery key and create an external backup to ensure you can recover your account if needed."

	// MsgDoctorPending is shown to doctors whose token is not approved yet.
	MsgDoctorPending = "account pending approval, give this token to the administrator"
)

// HumanizeError maps err onto one of the Msg* constants. Validation errors
// keep the validator's detail.
func HumanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrValidation):
		return MsgInvalidDataProvided + ": " + validationDetail(err)
	case errors.Is(err, service.ErrInvalidPassword), errors.Is(err, service.ErrDecryption):
		return MsgIncorrectCredentials
	case errors.Is(err, service.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, service.ErrDuplicateUser):
		return MsgLoginAlreadyExists
	case errors.Is(err, service.ErrRestore):
		return MsgRestoreFailed
	case errors.Is(err, service.ErrBackup):
		return MsgBackupFailed
	case errors.Is(err, service.ErrNotAuthenticated):
		return MsgNotSignedIn
	case errors.Is(err, service.ErrNoteNotFound):
		return MsgNoteNotFound
	case errors.Is(err, service.ErrNothingToExport):
		return MsgNothingToExport
	case errors.Is(err, service.ErrVersionConflict):
		return MsgVersionConflict
	case errors.Is(err, service.ErrStorage):
		return MsgStorageError
	default:
		return MsgInternalError
	}
}

// validationDetail returns the innermost wrapped message, which is the
// validator's sentinel.
func validationDetail(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs := joined.Unwrap()
		return errs[len(errs)-1].Error()
	}
	return err.Error()
}
