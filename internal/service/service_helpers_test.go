package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "alice"
	testPassword = "correct horse battery"

	// testIterations keeps PBKDF2 fast in tests.
	testIterations = 1000
)

// fixture is a fully wired service layer over a real sqlite file.
type fixture struct {
	services *Services
	storages *store.Storages
	keyChain crypto.KeyChain
	session  *session.Session
	cfg      *config.ClientConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(dir, "vault.db")}},
		Backup: config.ClientBackup{
			Dir:         filepath.Join(dir, "backups"),
			DownloadDir: filepath.Join(dir, "downloads"),
		},
	}

	connector := store.NewConnector(cfg.Storage.DB, logger.Nop(), nil)
	t.Cleanup(func() { _ = connector.Close() })

	storages, err := store.NewStorages(context.Background(), connector, logger.Nop())
	require.NoError(t, err)

	keyChain := crypto.NewKeyChain(crypto.WithIterations(testIterations))
	sess := session.New()

	return &fixture{
		services: NewServices(storages, keyChain, sess, nil, cfg),
		storages: storages,
		keyChain: keyChain,
		session:  sess,
		cfg:      cfg,
	}
}

// signUp creates testUser and leaves them signed in.
func (f *fixture) signUp(t *testing.T) CreatedAccount {
	t.Helper()

	created, err := f.services.AccountService.CreateAccount(context.Background(), testUser, testPassword)
	require.NoError(t, err)
	return created
}

// testKey returns a usable key without going through the store.
func testKey(t *testing.T) *crypto.Key {
	t.Helper()

	key, err := crypto.NewKeyChain(crypto.WithIterations(1)).DeriveKey("password", []byte("salt"))
	require.NoError(t, err)
	return key
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
