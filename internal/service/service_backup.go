package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/models"
)

// BackupReminderAge is how old the last backup may get before the user is
// asked to check their recovery key and make an external backup.
const BackupReminderAge = 30 * 24 * time.Hour

type backupService struct {
	accounts store.AccountRepository
	records  RecordService
	keyChain crypto.KeyChain
	session  *session.Session
	locks    *userLocks
	cfg      config.ClientBackup
	now      func() time.Time
}

// NewBackupService constructs a [BackupService]. locks must be the instance
// shared with the record service.
func NewBackupService(
	accounts store.AccountRepository,
	records RecordService,
	keyChain crypto.KeyChain,
	sess *session.Session,
	locks *userLocks,
	cfg config.ClientBackup,
) BackupService {
	if locks == nil {
		locks = newUserLocks()
	}
	return &backupService{
		accounts: accounts,
		records:  records,
		keyChain: keyChain,
		session:  sess,
		locks:    locks,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *backupService) GenerateRecoveryKey() (string, error) {
	return s.keyChain.GenerateRecoveryKey()
}

// backupFileName returns backup_<username>_<RFC3339 UTC>.json. The username
// is path-escaped so the name is always a single path element.
func backupFileName(username string, at time.Time) string {
	return fmt.Sprintf("backup_%s_%s.json", url.PathEscape(username), at.UTC().Format(time.RFC3339))
}

func (s *backupService) CreateBackup(ctx context.Context) (BackupResult, error) {
	log := logger.FromContext(ctx)

	username, key, ok := s.session.Current()
	if !ok {
		return BackupResult{}, ErrNotAuthenticated
	}

	content, err := s.seal(ctx, username, key)
	if err != nil {
		return BackupResult{}, err
	}

	at := s.now()
	result := BackupResult{FileName: backupFileName(username, at)}

	if s.cfg.Dir != "" {
		result.Path, err = writeFileAtomic(s.cfg.Dir, result.FileName, content)
		if err != nil {
			log.Warn().Err(err).Str("func", "*backupService.CreateBackup").Msg("backup directory not writable, using download directory")
		}
	}
	if result.Path == "" {
		result.Fallback = true
		result.Path, err = writeFileAtomic(s.cfg.DownloadDir, result.FileName, content)
		if err != nil {
			log.Err(err).Str("func", "*backupService.CreateBackup").Str("username", username).Msg("error writing backup")
			return BackupResult{}, fmt.Errorf("%w: %w", ErrBackup, err)
		}
	}

	if err = s.markBackedUp(ctx, username, at); err != nil {
		return result, err
	}

	log.Info().Str("username", username).Str("file", result.FileName).Bool("fallback", result.Fallback).Msg("backup created")
	return result, nil
}

func (s *backupService) WriteBackup(ctx context.Context, w io.Writer) error {
	username, key, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	content, err := s.seal(ctx, username, key)
	if err != nil {
		return err
	}

	if _, err = w.Write(content); err != nil {
		return fmt.Errorf("%w: %w", ErrBackup, err)
	}
	return s.markBackedUp(ctx, username, s.now())
}

// seal returns the backup file content: notes, health history and request
// decisions encrypted under the recovery key. Personal info is left out.
func (s *backupService) seal(ctx context.Context, username string, key *crypto.Key) ([]byte, error) {
	data, err := s.records.LoadData(ctx, username, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.UserData{}
		data.Normalize()
	}

	recoveryKey, err := s.recoveryKey(ctx, username, key)
	if err != nil {
		return nil, err
	}
	defer recoveryKey.Destroy()

	env, err := s.keyChain.Encrypt(models.BackupPayload{
		HealthHistory: data.HealthHistory,
		Notes:         data.Notes,
		Requests:      data.Requests,
	}, recoveryKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackup, err)
	}

	content, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackup, err)
	}
	return content, nil
}

func (s *backupService) recoveryKey(ctx context.Context, username string, key *crypto.Key) (*crypto.Key, error) {
	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if record.EncryptedRecoveryKey == nil {
		return nil, fmt.Errorf("%w: account has no recovery key", ErrBackup)
	}

	var hexKey string
	if err = s.keyChain.Decrypt(*record.EncryptedRecoveryKey, key, &hexKey); err != nil {
		return nil, mapDecryptError(err)
	}

	return s.keyChain.KeyFromRecoveryKey(hexKey)
}

func (s *backupService) markBackedUp(ctx context.Context, username string, at time.Time) error {
	unlock, err := s.locks.Lock(ctx, username)
	if err != nil {
		return err
	}
	defer unlock()

	if err = s.accounts.SetLastBackup(ctx, username, at); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *backupService) RestoreFromPath(ctx context.Context, path, recoveryKey string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}
	defer f.Close()

	return s.RestoreFromFile(ctx, f, recoveryKey)
}

// RestoreFromFile merges a backup into the signed-in user's data. Entries
// from the backup replace existing ones with the same note id, health date
// or request id; everything else is kept.
func (s *backupService) RestoreFromFile(ctx context.Context, r io.Reader, recoveryKey string) error {
	log := logger.FromContext(ctx)

	username, key, ok := s.session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	payload, err := s.open(r, recoveryKey)
	if err != nil {
		log.Warn().Err(err).Str("func", "*backupService.RestoreFromFile").Str("username", username).Msg("backup could not be opened")
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}

	_, err = s.records.Update(ctx, username, key, func(data *models.UserData) error {
		mergeBackup(data, payload)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("username", username).Int("notes", len(payload.Notes)).Int("health_entries", len(payload.HealthHistory)).Msg("backup restored")
	return nil
}

func (s *backupService) open(r io.Reader, recoveryKey string) (models.BackupPayload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return models.BackupPayload{}, err
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return models.BackupPayload{}, err
	}
	if env.IsZero() {
		return models.BackupPayload{}, errors.New("backup file holds no ciphertext")
	}

	key, err := s.keyChain.KeyFromRecoveryKey(strings.TrimSpace(recoveryKey))
	if err != nil {
		return models.BackupPayload{}, err
	}
	defer key.Destroy()

	var payload models.BackupPayload
	if err = s.keyChain.Decrypt(env, key, &payload); err != nil {
		return models.BackupPayload{}, err
	}
	return payload, nil
}

func mergeBackup(data *models.UserData, payload models.BackupPayload) {
	for _, note := range payload.Notes {
		if i := data.NoteIndex(note.ID); i >= 0 {
			data.Notes[i] = note
		} else {
			data.Notes = append(data.Notes, note)
		}
	}

	for _, entry := range payload.HealthHistory {
		data.UpsertHealthEntry(entry)
	}
	models.SortHealthHistory(data.HealthHistory)

	for _, resp := range payload.Requests {
		upsertRequestResponse(data, resp)
	}
}

func upsertRequestResponse(data *models.UserData, resp models.RequestResponse) {
	for i := range data.Requests {
		if data.Requests[i].RequestID == resp.RequestID {
			data.Requests[i] = resp
			return
		}
	}
	data.Requests = append(data.Requests, resp)
}

func (s *backupService) LastBackupAt(ctx context.Context) (*time.Time, error) {
	username, _, ok := s.session.Current()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	record, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return record.LastBackupAt, nil
}

// BackupDue reports whether the signed-in user has never been backed up or
// the last backup is at least maxAge old.
func (s *backupService) BackupDue(ctx context.Context, now time.Time, maxAge time.Duration) (bool, error) {
	last, err := s.LastBackupAt(ctx)
	if err != nil {
		return false, err
	}
	return last == nil || now.Sub(*last) >= maxAge, nil
}

// writeFileAtomic writes content to dir/name through a temporary file so a
// crash never leaves a truncated backup behind.
func writeFileAtomic(dir, name string, content []byte) (string, error) {
	if dir == "" {
		return "", errors.New("no directory")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".backup-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}
