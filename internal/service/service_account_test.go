package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/mock"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── CreateAccount ────────────────────────────────────────────────────────────

func TestAccountService_CreateAccount_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.AccountService.CreateAccount(ctx, testUser, testPassword)

	require.NoError(t, err)
	require.NotNil(t, created.Key)
	assert.Len(t, created.RecoveryKey, 64)
	assert.Equal(t, testUser, f.services.AccountService.CurrentUser())

	record, err := f.storages.AccountRepository.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, record.Salt, crypto.SaltSize)
	assert.True(t, record.HasCredentials())
	assert.NotNil(t, record.EncryptedRecoveryKey)
	assert.Nil(t, record.Data)
	assert.Nil(t, record.PersonalInfo)
	assert.Equal(t, []models.Note{}, record.Notes)
	assert.Equal(t, []models.HealthEntry{}, record.HealthData)

	var marker string
	require.NoError(t, f.keyChain.Decrypt(*record.KeyVerification, created.Key, &marker))
	assert.Equal(t, "verification", marker)
}

func TestAccountService_CreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "short username", username: "abc", password: testPassword, want: validators.ErrUsernameTooShort},
		{name: "short password", username: testUser, password: "elevenchars", want: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.services.AccountService.CreateAccount(context.Background(), tt.username, tt.password)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, f.session.IsActive())
		})
	}
}

func TestAccountService_CreateAccount_Duplicate(t *testing.T) {
	f := newFixture(t)
	first := f.signUp(t)

	_, err := f.services.AccountService.CreateAccount(context.Background(), testUser, "another long password")

	assert.ErrorIs(t, err, ErrDuplicateUser)
	// The first account is untouched and still opens with its password.
	_, err = f.services.AccountService.Login(context.Background(), testUser, testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, first.RecoveryKey)
}

func TestAccountService_CreateAccount_ConcurrentSameName(t *testing.T) {
	f := newFixture(t)

	const n = 8
	var (
		wg        sync.WaitGroup
		successes int
		dupes     int
		mu        sync.Mutex
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.services.AccountService.CreateAccount(context.Background(), testUser, testPassword)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrDuplicateUser):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, dupes)
}

func TestAccountService_CreateAccount_StorageErrorDestroysKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	keyChain := mock.NewMockKeyChain(ctrl)
	key := testKey(t)

	keyChain.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	keyChain.EXPECT().DeriveKey(testPassword, []byte("salt")).Return(key, nil)
	keyChain.EXPECT().Encrypt(gomock.Any(), key).Return(models.Envelope{IV: []byte{1}}, nil).Times(2)
	keyChain.EXPECT().GenerateRecoveryKey().Return("rk", nil)
	accounts.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).Return(fmt.Errorf("%w: disk I/O error", store.ErrStorage))

	sess := session.New()
	svc := NewAccountService(accounts, keyChain, sess, validators.NewCredentialsValidator())

	_, err := svc.CreateAccount(context.Background(), testUser, testPassword)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.True(t, key.Destroyed())
	assert.False(t, sess.IsActive())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAccountService_Login_Success(t *testing.T) {
	f := newFixture(t)
	created := f.signUp(t)
	f.services.AccountService.Logout()
	require.True(t, created.Key.Destroyed())

	key, err := f.services.AccountService.Login(context.Background(), testUser, testPassword)

	require.NoError(t, err)
	username, current, ok := f.session.Current()
	assert.True(t, ok)
	assert.Equal(t, testUser, username)
	assert.Same(t, key, current)
	assert.NotEmpty(t, f.session.ID())
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.signUp(t)
	f.services.AccountService.Logout()

	_, err := f.services.AccountService.Login(context.Background(), testUser, "wrong password!!")

	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.False(t, f.session.IsActive())
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.AccountService.Login(context.Background(), "nobody", testPassword)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountService_Login_RecordWithoutCredentials(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.storages.AccountRepository.Put(context.Background(), testUser, models.AccountRecord{}))

	_, err := f.services.AccountService.Login(context.Background(), testUser, testPassword)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountService_Login_MarkerMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	keyChain := mock.NewMockKeyChain(ctrl)
	key := testKey(t)

	record := models.AccountRecord{Salt: []byte("salt"), KeyVerification: &models.Envelope{IV: []byte{1}, EncryptedData: []byte{2}}}
	accounts.EXPECT().Get(gomock.Any(), testUser).Return(record, nil)
	keyChain.EXPECT().DeriveKey(testPassword, record.Salt).Return(key, nil)
	keyChain.EXPECT().Decrypt(*record.KeyVerification, key, gomock.Any()).DoAndReturn(
		func(_ models.Envelope, _ *crypto.Key, target any) error {
			*target.(*string) = "something else"
			return nil
		},
	)

	sess := session.New()
	svc := NewAccountService(accounts, keyChain, sess, validators.NewCredentialsValidator())

	_, err := svc.Login(context.Background(), testUser, testPassword)

	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.True(t, key.Destroyed())
	assert.False(t, sess.IsActive())
}

func TestAccountService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	accounts.EXPECT().Get(gomock.Any(), testUser).Return(models.AccountRecord{}, fmt.Errorf("%w: locked", store.ErrStorage))

	svc := NewAccountService(accounts, mock.NewMockKeyChain(ctrl), session.New(), validators.NewCredentialsValidator())

	_, err := svc.Login(context.Background(), testUser, testPassword)

	assert.ErrorIs(t, err, ErrStorage)
}

func TestAccountService_InvalidPasswordAndDecryptionShareMessage(t *testing.T) {
	assert.Equal(t, ErrInvalidPassword.Error(), ErrDecryption.Error())
	assert.NotErrorIs(t, ErrInvalidPassword, ErrDecryption)
}

// ── Logout / RecoveryKey ─────────────────────────────────────────────────────

func TestAccountService_Logout(t *testing.T) {
	f := newFixture(t)
	created := f.signUp(t)

	f.services.AccountService.Logout()

	assert.False(t, f.session.IsActive())
	assert.Empty(t, f.services.AccountService.CurrentUser())
	assert.True(t, created.Key.Destroyed())
}

func TestAccountService_RecoveryKey(t *testing.T) {
	f := newFixture(t)
	created := f.signUp(t)

	got, err := f.services.AccountService.RecoveryKey(context.Background())

	require.NoError(t, err)
	assert.Equal(t, created.RecoveryKey, got)
}

func TestAccountService_RecoveryKey_NotAuthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.AccountService.RecoveryKey(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
