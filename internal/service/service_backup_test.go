package service

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var backupTime = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newBackupFixture(t *testing.T) (*fixture, *backupService, CreatedAccount) {
	t.Helper()

	f := newFixture(t)
	created := f.signUp(t)

	svc := f.services.BackupService.(*backupService)
	svc.now = fixedClock(backupTime)
	return f, svc, created
}

func seedUserData(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.services.UserDataService.SavePersonalInfo(ctx, models.PersonalInfo{Name: "Alice", Age: "42"}))
	require.NoError(t, f.services.UserDataService.SaveHealthEntry(ctx, models.HealthEntry{Date: "2026-05-01", WaterIntake: 1500, PainLevel: 3}))
	_, err := f.services.UserDataService.AddNote(ctx, "stoma bag changed")
	require.NoError(t, err)
}

func TestBackupService_GenerateRecoveryKey(t *testing.T) {
	_, svc, _ := newBackupFixture(t)

	k, err := svc.GenerateRecoveryKey()

	require.NoError(t, err)
	assert.Len(t, k, 64)
}

func TestBackupService_CreateBackup_WritesEnvelope(t *testing.T) {
	f, svc, created := newBackupFixture(t)
	seedUserData(t, f)

	result, err := svc.CreateBackup(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, "backup_alice_2026-05-04T10:30:00Z.json", result.FileName)
	assert.Equal(t, filepath.Join(f.cfg.Backup.Dir, result.FileName), result.Path)

	raw, err := os.ReadFile(result.Path)
	require.NoError(t, err)

	var shape map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Len(t, shape, 2)
	assert.Contains(t, shape, "iv")
	assert.Contains(t, shape, "encryptedData")

	var iv []int
	require.NoError(t, json.Unmarshal(shape["iv"], &iv))
	assert.Len(t, iv, 12)

	// Opens under the recovery key and carries no personal info.
	var env models.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	key, err := f.keyChain.KeyFromRecoveryKey(created.RecoveryKey)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, f.keyChain.Decrypt(env, key, &payload))
	assert.Contains(t, payload, "notes")
	assert.Contains(t, payload, "healthHistory")
	assert.NotContains(t, payload, "personalInfo")

	// The login key cannot open it.
	assert.Error(t, f.keyChain.Decrypt(env, created.Key, &payload))
}

func TestBackupService_CreateBackup_RecordsLastBackup(t *testing.T) {
	_, svc, _ := newBackupFixture(t)
	ctx := context.Background()

	due, err := svc.BackupDue(ctx, backupTime, 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, due, "never backed up")

	_, err = svc.CreateBackup(ctx)
	require.NoError(t, err)

	last, err := svc.LastBackupAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(backupTime))

	due, err = svc.BackupDue(ctx, backupTime.Add(23*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, due)

	due, err = svc.BackupDue(ctx, backupTime.Add(24*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestBackupService_CreateBackup_FallsBackToDownloadDir(t *testing.T) {
	f, svc, _ := newBackupFixture(t)

	// A regular file where the backup directory should be.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	svc.cfg.Dir = filepath.Join(blocker, "backups")

	result, err := svc.CreateBackup(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, filepath.Join(f.cfg.Backup.DownloadDir, result.FileName), result.Path)
	assert.FileExists(t, result.Path)
}

func TestBackupService_CreateBackup_NoBackupDir(t *testing.T) {
	_, svc, _ := newBackupFixture(t)
	svc.cfg.Dir = ""

	result, err := svc.CreateBackup(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Fallback)
}

func TestBackupService_CreateBackup_NoDestination(t *testing.T) {
	_, svc, _ := newBackupFixture(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	svc.cfg.Dir = filepath.Join(blocker, "a")
	svc.cfg.DownloadDir = filepath.Join(blocker, "b")

	_, err := svc.CreateBackup(context.Background())

	assert.ErrorIs(t, err, ErrBackup)
}

func TestBackupService_CreateBackup_UsernameWithPathSeparators(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantFile string
	}{
		{
			name:     "slash",
			username: "ward/7",
			wantFile: "backup_ward%2F7_2026-05-04T10:30:00Z.json",
		},
		{
			name:     "parent directory",
			username: "../../x",
			wantFile: "backup_..%2F..%2Fx_2026-05-04T10:30:00Z.json",
		},
		{
			name:     "backslash",
			username: `ward\7`,
			wantFile: "backup_ward%5C7_2026-05-04T10:30:00Z.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.services.AccountService.CreateAccount(context.Background(), tt.username, testPassword)
			require.NoError(t, err)

			svc := f.services.BackupService.(*backupService)
			svc.now = fixedClock(backupTime)

			result, err := svc.CreateBackup(context.Background())

			require.NoError(t, err)
			assert.False(t, result.Fallback)
			assert.Equal(t, tt.wantFile, result.FileName)
			assert.Equal(t, filepath.Join(f.cfg.Backup.Dir, tt.wantFile), result.Path)
			assert.FileExists(t, result.Path)

			entries, err := os.ReadDir(filepath.Dir(f.cfg.Backup.Dir))
			require.NoError(t, err)
			for _, e := range entries {
				assert.False(t, strings.HasSuffix(e.Name(), ".json"), "file %s written outside the backup directory", e.Name())
			}
		})
	}
}

func TestWriteFileAtomic_RejectsNestedNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a/b.json", "../x.json", "..", ""} {
		_, err := writeFileAtomic(dir, name, []byte("{}"))
		assert.Error(t, err, name)
	}
}

func TestBackupService_CreateBackup_NotAuthenticated(t *testing.T) {
	f, svc, _ := newBackupFixture(t)
	f.services.AccountService.Logout()

	_, err := svc.CreateBackup(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestBackupService_RestoreRoundTrip_MergesRestoredWins(t *testing.T) {
	f, svc, created := newBackupFixture(t)
	ctx := context.Background()
	seedUserData(t, f)

	original, err := f.services.UserDataService.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, original, 1)

	result, err := svc.CreateBackup(ctx)
	require.NoError(t, err)

	// Diverge after the backup.
	require.NoError(t, f.services.UserDataService.EditNote(ctx, original[0].ID, "edited later"))
	later, err := f.services.UserDataService.AddNote(ctx, "added later")
	require.NoError(t, err)
	require.NoError(t, f.services.UserDataService.SaveHealthEntry(ctx, models.HealthEntry{Date: "2026-05-01", WaterIntake: 1, PainLevel: 9}))
	require.NoError(t, f.services.UserDataService.SaveHealthEntry(ctx, models.HealthEntry{Date: "2026-05-03", WaterIntake: 900}))
	require.NoError(t, f.services.UserDataService.SavePersonalInfo(ctx, models.PersonalInfo{Name: "Alice B"}))

	require.NoError(t, svc.RestoreFromPath(ctx, result.Path, created.RecoveryKey))

	notes, err := f.services.UserDataService.ListNotes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Note{original[0], later}, notes)

	history, err := f.services.UserDataService.HealthHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-05-03", history[0].Date)
	assert.Equal(t, models.HealthEntry{Date: "2026-05-01", WaterIntake: 1500, PainLevel: 3}, history[1])

	info, err := f.services.UserDataService.PersonalInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", info.Name)
}

func TestBackupService_RestoreFromFile_Failures(t *testing.T) {
	f, svc, created := newBackupFixture(t)
	ctx := context.Background()
	seedUserData(t, f)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBackup(ctx, &buf))

	otherKey, err := f.keyChain.GenerateRecoveryKey()
	require.NoError(t, err)

	tests := []struct {
		name        string
		content     string
		recoveryKey string
	}{
		{name: "wrong recovery key", content: buf.String(), recoveryKey: otherKey},
		{name: "not json", content: "definitely not json", recoveryKey: created.RecoveryKey},
		{name: "empty envelope", content: `{"iv":[],"encryptedData":[]}`, recoveryKey: created.RecoveryKey},
		{name: "truncated ciphertext", content: buf.String()[:len(buf.String())-10] + "]}", recoveryKey: created.RecoveryKey},
		{name: "malformed recovery key", content: buf.String(), recoveryKey: "not-hex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RestoreFromFile(ctx, strings.NewReader(tt.content), tt.recoveryKey)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRestore)
			assert.Equal(t, "failed to restore from backup", ErrRestore.Error())
		})
	}

	// Nothing was merged by the failed attempts.
	notes, err := f.services.UserDataService.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestBackupService_RestoreFromPath_MissingFile(t *testing.T) {
	_, svc, created := newBackupFixture(t)

	err := svc.RestoreFromPath(context.Background(), filepath.Join(t.TempDir(), "nope.json"), created.RecoveryKey)

	assert.ErrorIs(t, err, ErrRestore)
}

func TestBackupService_WriteBackup_RecoveryKeyWithWhitespace(t *testing.T) {
	f, svc, created := newBackupFixture(t)
	ctx := context.Background()
	seedUserData(t, f)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteBackup(ctx, &buf))

	err := svc.RestoreFromFile(ctx, &buf, "  "+created.RecoveryKey+"\n")

	require.NoError(t, err)
}

func TestMergeBackup_Requests(t *testing.T) {
	data := &models.UserData{Requests: []models.RequestResponse{
		{RequestID: 1, Accepted: false},
		{RequestID: 2, Accepted: true},
	}}
	data.Normalize()

	mergeBackup(data, models.BackupPayload{Requests: []models.RequestResponse{
		{RequestID: 1, Accepted: true, Message: "changed my mind"},
		{RequestID: 3, Accepted: false},
	}})

	assert.Equal(t, []models.RequestResponse{
		{RequestID: 1, Accepted: true, Message: "changed my mind"},
		{RequestID: 2, Accepted: true},
		{RequestID: 3, Accepted: false},
	}, data.Requests)
}
