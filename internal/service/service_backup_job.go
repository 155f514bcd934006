package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/session"
)

type backupJob struct {
	backups BackupService
	session *session.Session
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupJob creates a job that backs up the signed-in user when the last
// backup has grown too old. The job is idle until Start is called.
func NewBackupJob(backups BackupService, sess *session.Session) BackupJob {
	return &backupJob{
		backups: backups,
		session: sess,
		now:     time.Now,
	}
}

// Start stops any previously running job, then checks every interval. Zero
// or negative durations fall back to one hour and 24 hours. Nothing happens
// while nobody is signed in.
func (j *backupJob) Start(ctx context.Context, interval, maxAge time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, maxAge)
			}
		}
	}()
}

func (j *backupJob) check(ctx context.Context, maxAge time.Duration) {
	log := logger.FromContext(ctx)

	if !j.session.IsActive() {
		return
	}

	due, err := j.backups.BackupDue(ctx, j.now(), maxAge)
	if err != nil {
		log.Err(err).Str("func", "*backupJob.check").Msg("error checking last backup")
		return
	}
	if !due {
		return
	}

	if _, err = j.backups.CreateBackup(ctx); err != nil {
		log.Err(err).Str("func", "*backupJob.check").Msg("automatic backup failed")
	}
}

// Stop cancels the background goroutine and blocks until it has exited.
// No-op when the job is not running.
func (j *backupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
