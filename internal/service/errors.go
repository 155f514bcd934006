package service

import (
	"errors"

	"github.com/MKhiriev/go-patient-vault/internal/store"
)

// credentialsMessage is shared by ErrInvalidPassword and ErrDecryption so the
// two failures cannot be told apart from their text.
const credentialsMessage = "incorrect password or unreadable data"

var (
	// ErrValidation wraps input validation failures, raised before any I/O.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateUser is returned when signing up with a taken username.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserNotFound is returned when no usable account exists for a name.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword is returned when the verification marker does not
	// decrypt under the derived key.
	ErrInvalidPassword = errors.New(credentialsMessage)

	// ErrDecryption is returned when stored application data does not
	// decrypt under the session key.
	ErrDecryption = errors.New(credentialsMessage)

	// ErrRestore is returned for backup files that cannot be read, parsed or
	// decrypted with the given recovery key.
	ErrRestore = errors.New("failed to restore from backup")

	// ErrBackup is returned when no backup destination can be written.
	ErrBackup = errors.New("failed to create backup")

	// ErrNotAuthenticated is returned by operations that need a signed-in
	// user when the session is empty.
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrNoteNotFound is returned when editing or deleting an unknown note.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNothingToExport is returned when no section is selected for export.
	ErrNothingToExport = errors.New("select at least one section to export")

	// ErrStorage is the store engine failure, re-exported for callers of
	// this package.
	ErrStorage = store.ErrStorage

	// ErrVersionConflict is returned when the record was changed by another
	// writer between read and write.
	ErrVersionConflict = store.ErrVersionConflict
)
