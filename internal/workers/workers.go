package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/config"
)

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	workers := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			workers = append(workers, w)
		}
	}
	return &Workers{workers: workers}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// BackupScheduler is the part of the backup job the worker drives.
type BackupScheduler interface {
	Start(ctx context.Context, interval, maxAge time.Duration)
	Stop()
}

type backupWorker struct {
	job      BackupScheduler
	interval time.Duration
	maxAge   time.Duration
}

// NewBackupWorker adapts the backup job to [Worker] using the configured
// check interval and maximum backup age.
func NewBackupWorker(job BackupScheduler, cfg config.ClientWorkers) Worker {
	return &backupWorker{
		job:      job,
		interval: cfg.BackupCheckInterval,
		maxAge:   cfg.BackupMaxAge,
	}
}

func (b *backupWorker) Start(ctx context.Context) {
	b.job.Start(ctx, b.interval, b.maxAge)
}

func (b *backupWorker) Stop() {
	b.job.Stop()
}
