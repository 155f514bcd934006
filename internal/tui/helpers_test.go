package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-patient-vault/internal/adapter"
	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/internal/session"
	"github.com/MKhiriev/go-patient-vault/internal/store"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "alice"
	testPassword = "correct horse battery"
)

type fixture struct {
	services *service.Services
	session  *session.Session
	cfg      *config.ClientConfig
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithFeed(t, nil)
}

func newFixtureWithFeed(t *testing.T, feed adapter.FeedAdapter) *fixture {
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

	sess := session.New()
	keyChain := crypto.NewKeyChain(crypto.WithIterations(1000))

	return &fixture{
		services: service.NewServices(storages, keyChain, sess, feed, cfg),
		session:  sess,
		cfg:      cfg,
	}
}

// signUp creates testUser and leaves them signed in.
func (f *fixture) signUp(t *testing.T) service.CreatedAccount {
	t.Helper()

	created, err := f.services.AccountService.CreateAccount(context.Background(), testUser, testPassword)
	require.NoError(t, err)
	return created
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// run executes cmd and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	require.NotNil(t, cmd)
	return cmd()
}

// settle feeds the result of cmd back into m until a page emits no command,
// navigates away or produces a message it does not own.
func settle(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, tea.Msg) {
	t.Helper()

	for cmd != nil {
		msg := cmd()
		switch msg := msg.(type) {
		case NavigateTo:
			return m, msg
		case tea.BatchMsg:
			var next []tea.Cmd
			for _, c := range msg {
				if c == nil {
					continue
				}
				var nextCmd tea.Cmd
				m, nextCmd = m.Update(c())
				next = append(next, nextCmd)
			}
			cmd = tea.Batch(next...)
		case authResult, copyResult, dashboardLoaded, recoveryKeyLoaded,
			notesLoaded, noteSaved, noteDeleted,
			healthLoaded, healthEntryLoaded, healthSaved,
			profileLoaded, profileSaved,
			backupStatusLoaded, backupDone, restoreDone,
			articlesLoaded, requestsLoaded, requestAnswered, exportDone:
			m, cmd = m.Update(msg)
		default:
			return m, msg
		}
	}
	return m, nil
}

// pump drives a RootModel, following navigation like the program loop does.
func pump(t *testing.T, r RootModel, msg tea.Msg) RootModel {
	t.Helper()

	for i := 0; msg != nil && i < 50; i++ {
		model, cmd := r.Update(msg)
		r = model.(RootModel)
		if cmd == nil {
			return r
		}
		msg = cmd()
		switch msg.(type) {
		case NavigateTo, showRecoveryKey, resetAuth,
			authResult, dashboardLoaded, recoveryKeyLoaded, notesLoaded, healthLoaded, profileLoaded, backupStatusLoaded:
		default:
			return r
		}
	}
	return r
}

// typeRoot sends text to the active page without running the cursor
// commands it returns.
func typeRoot(r RootModel, text string) RootModel {
	model, _ := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return model.(RootModel)
}
