package tui

import (
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	pageAuth      = "auth"
	pageRecovery  = "recovery"
	pageDashboard = "dashboard"
	pageNotes     = "notes"
	pageHealth    = "health"
	pageProfile   = "profile"
	pageBackup    = "backup"
	pageFeed      = "feed"
	pageExport    = "export"
)

// NavigateTo switches the active page. When Payload is set it is delivered
// to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

type authResult struct {
	mode        AuthMode
	username    string
	recoveryKey string
	err         error
}

// showRecoveryKey opens the recovery key page for key.
type showRecoveryKey struct {
	key    string
	signup bool
}

// resetAuth puts the auth page back into mode with empty fields.
type resetAuth struct {
	mode   AuthMode
	status string
}

type copyResult struct {
	err error
}

type dashboardLoaded struct {
	lastBackup *time.Time
	remind     bool
	err        error
}

type recoveryKeyLoaded struct {
	key string
	err error
}

type notesLoaded struct {
	notes []models.Note
	err   error
}

type noteSaved struct {
	err error
}

type noteDeleted struct {
	err error
}

type healthLoaded struct {
	entries []models.HealthEntry
	err     error
}

type healthEntryLoaded struct {
	entry models.HealthEntry
	found bool
	err   error
}

type healthSaved struct {
	err error
}

type profileLoaded struct {
	info *models.PersonalInfo
	err  error
}

type profileSaved struct {
	err error
}

type backupStatusLoaded struct {
	lastBackup *time.Time
	err        error
}

type backupDone struct {
	result service.BackupResult
	err    error
}

type restoreDone struct {
	err error
}

type articlesLoaded struct {
	articles []models.Article
	err      error
}

type requestsLoaded struct {
	requests []models.SharingRequest
	err      error
}

type requestAnswered struct {
	requestID int64
	accepted  bool
	err       error
}

type exportDone struct {
	paths []string
	err   error
}
