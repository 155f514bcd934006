package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Tx is one open transaction over a declared set of object stores.
type Tx interface {
	// ObjectStore returns the named store. Fails with [ErrUnknownObjectStore]
	// if name was not declared when the transaction was opened.
	ObjectStore(name string) (ObjectStore, error)
}

// ObjectStore is a named key-value store inside a transaction. Values are
// JSON-encoded; every row carries a version stamp bumped on each write.
type ObjectStore interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	GetWithVersion(ctx context.Context, key string, dest any) (version int64, found bool, err error)
	Put(ctx context.Context, key string, value any) error
	// Add inserts a new key and fails with [ErrKeyExists] if it is present.
	Add(ctx context.Context, key string, value any) error
	// PutIfVersion overwrites key only if its stamp equals version and
	// returns the new stamp. Fails with [ErrVersionConflict] otherwise.
	PutIfVersion(ctx context.Context, key string, value any, version int64) (int64, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// AccountRepository persists [models.AccountRecord] values keyed by username
// in the userdata store.
type AccountRepository interface {
	// Create atomically adds a new account; [ErrKeyExists] if the username
	// is taken.
	Create(ctx context.Context, username string, record models.AccountRecord) error
	// Get returns the account with its version stamp, or [ErrNotFound].
	Get(ctx context.Context, username string) (models.AccountRecord, error)
	// Put overwrites the whole record unconditionally.
	Put(ctx context.Context, username string, record models.AccountRecord) error
	// UpdateData replaces the data envelope if the stored version still
	// equals expectedVersion and returns the new version.
	UpdateData(ctx context.Context, username string, data models.Envelope, expectedVersion int64) (int64, error)
	// SetLastBackup records the time of the last successful backup.
	SetLastBackup(ctx context.Context, username string, at time.Time) error
}

// DoctorRepository persists [models.DoctorRecord] values in the doctordata
// store.
type DoctorRepository interface {
	Create(ctx context.Context, username string, record models.DoctorRecord) error
	Get(ctx context.Context, username string) (models.DoctorRecord, error)
	SetStatus(ctx context.Context, username, status string) error
}

// FeedCacheRepository keeps the last successfully fetched feed lists.
type FeedCacheRepository interface {
	SaveArticles(ctx context.Context, articles []models.Article) error
	LoadArticles(ctx context.Context) ([]models.Article, error)
	SaveRequests(ctx context.Context, requests []models.SharingRequest) error
	LoadRequests(ctx context.Context) ([]models.SharingRequest, error)
}
