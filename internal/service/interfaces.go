package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/models"
)

// CreatedAccount is the result of a successful sign-up. RecoveryKey must be
// shown to the user once and is not retrievable in plaintext from storage
// without the account key.
type CreatedAccount struct {
	Key         *crypto.Key
	RecoveryKey string
}

// AccountService creates accounts and signs users in and out.
type AccountService interface {
	// CreateAccount validates the credentials, writes a new account
	// atomically and signs the new user in.
	CreateAccount(ctx context.Context, username, password string) (CreatedAccount, error)

	// Login checks the password against the stored verification marker and
	// signs the user in.
	Login(ctx context.Context, username, password string) (*crypto.Key, error)

	// Logout clears the session and destroys the key.
	Logout()

	// RecoveryKey returns the signed-in user's recovery key.
	RecoveryKey(ctx context.Context) (string, error)

	// CurrentUser returns the signed-in username or "".
	CurrentUser() string
}

// RecordService reads and writes the encrypted [models.UserData] blob.
type RecordService interface {
	// SaveData encrypts data and replaces the stored blob. Other account
	// fields are preserved.
	SaveData(ctx context.Context, username string, data models.UserData, key *crypto.Key) error

	// LoadData returns the decrypted blob, or nil when the account has no
	// data yet.
	LoadData(ctx context.Context, username string, key *crypto.Key) (*models.UserData, error)

	// Update loads, mutates with fn and saves the blob while holding the
	// user's write slot. fn receives a normalized, never-nil value.
	Update(ctx context.Context, username string, key *crypto.Key, fn func(*models.UserData) error) (*models.UserData, error)
}

// UserDataService exposes the patient's features for the signed-in user.
type UserDataService interface {
	PersonalInfo(ctx context.Context) (*models.PersonalInfo, error)
	SavePersonalInfo(ctx context.Context, info models.PersonalInfo) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	AddNote(ctx context.Context, text string) (models.Note, error)
	EditNote(ctx context.Context, id int64, text string) error
	DeleteNote(ctx context.Context, id int64) error

	HealthHistory(ctx context.Context) ([]models.HealthEntry, error)
	HealthEntry(ctx context.Context, date string) (models.HealthEntry, bool, error)
	SaveHealthEntry(ctx context.Context, entry models.HealthEntry) error
}

// BackupResult describes a written backup file.
type BackupResult struct {
	Path     string
	FileName string
	// Fallback is true when the download directory was used.
	Fallback bool
}

// BackupService writes and restores recovery-key encrypted backups.
type BackupService interface {
	GenerateRecoveryKey() (string, error)
	CreateBackup(ctx context.Context) (BackupResult, error)
	WriteBackup(ctx context.Context, w io.Writer) error
	RestoreFromFile(ctx context.Context, r io.Reader, recoveryKey string) error
	RestoreFromPath(ctx context.Context, path, recoveryKey string) error
	LastBackupAt(ctx context.Context) (*time.Time, error)
	BackupDue(ctx context.Context, now time.Time, maxAge time.Duration) (bool, error)
}

// BackupJob runs automatic backups in the background.
type BackupJob interface {
	// Start launches the checker goroutine; it checks every interval and
	// backs up when the last backup is older than maxAge. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval, maxAge time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}

// DoctorService manages doctor accounts kept next to patient accounts.
type DoctorService interface {
	CreateDoctorAccount(ctx context.Context, username, password string) (token string, err error)
	LoginDoctor(ctx context.Context, username, password string) (models.DoctorSession, error)
	ApproveDoctor(ctx context.Context, username string) error
}

// FeedService serves remote articles and sharing requests with an offline
// fallback.
type FeedService interface {
	Articles(ctx context.Context) ([]models.Article, error)
	SharingRequests(ctx context.Context) ([]models.SharingRequest, error)
	RespondToRequest(ctx context.Context, requestID int64, accept bool, message string) error
}

// ExportService writes selected collections as CSV files.
type ExportService interface {
	Export(ctx context.Context, opts ExportOptions) ([]string, error)
}
