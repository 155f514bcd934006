package service

import (
	"github.com/MKhiriev/go-patient-vault/internal/adapter"
	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	"github.com/MKhiriev/go-patient-vault/internal/validators"
)

// Services groups every service the UI talks to.
type Services struct {
	AccountService  AccountService
	RecordService   RecordService
	UserDataService UserDataService
	BackupService   BackupService
	BackupJob       BackupJob
	DoctorService   DoctorService
	FeedService     FeedService
	ExportService   ExportService
}

// NewServices wires the services over storages. All writers of account
// records share one set of per-user locks. feed may be nil when the client
// runs offline.
func NewServices(
	storages *store.Storages,
	keyChain crypto.KeyChain,
	sess *session.Session,
	feed adapter.FeedAdapter,
	cfg *config.ClientConfig,
) *Services {
	locks := newUserLocks()
	credentials := validators.NewCredentialsValidator()
	userData := validators.NewUserDataValidator()

	records := NewRecordService(storages.AccountRepository, keyChain, locks)
	backups := NewBackupService(storages.AccountRepository, records, keyChain, sess, locks, cfg.Backup)

	return &Services{
		AccountService:  NewAccountService(storages.AccountRepository, keyChain, sess, credentials),
		RecordService:   records,
		UserDataService: NewUserDataService(records, sess, userData),
		BackupService:   backups,
		BackupJob:       NewBackupJob(backups, sess),
		DoctorService:   NewDoctorService(storages.DoctorRepository, keyChain, credentials),
		FeedService:     NewFeedService(feed, storages.FeedCacheRepository, records, sess),
		ExportService:   NewExportService(records, sess, userData),
	}
}
