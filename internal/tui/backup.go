package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// BackupModel creates backups and restores them with a recovery key.
type BackupModel struct {
	ctx     context.Context
	backups service.BackupService

	lastBackup string
	restoring  bool
	form       form
	busy       bool
	status     string
	errMsg     string
}

func NewBackupModel(ctx context.Context, backups service.BackupService) *BackupModel {
	f := newForm("path to backup_*.json", "recovery key")
	f.inputs[1].CharLimit = 128
	f.mask(1)

	return &BackupModel{ctx: ctx, backups: backups, form: f}
}

func (m *BackupModel) Init() tea.Cmd {
	m.restoring = false
	m.status = ""
	m.errMsg = ""
	return m.cmdStatus()
}

func (m *BackupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case backupStatusLoaded:
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.lastBackup = formatTime(msg.lastBackup)
		return m, nil

	case backupDone:
		m.busy = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.status = "Backup written to " + msg.result.Path
		if msg.result.Fallback {
			m.status += " (download directory)"
		}
		return m, m.cmdStatus()

	case restoreDone:
		m.busy = false
		m.form.reset()
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.restoring = false
		m.status = "Data restored from backup"
		return m, nil

	case tea.KeyMsg:
		if m.restoring {
			return m.updateRestore(msg)
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, keys.backup):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.status = ""
			m.errMsg = ""
			ctx := m.ctx
			backups := m.backups
			return m, func() tea.Msg {
				result, err := backups.CreateBackup(ctx)
				return backupDone{result: result, err: err}
			}
		case key.Matches(msg, keys.restore):
			m.restoring = true
			m.status = ""
			m.errMsg = ""
			m.form.reset()
			return m, nil
		}
		return m, nil
	}

	if m.restoring {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *BackupModel) updateRestore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.restoring = false
		m.errMsg = ""
		m.form.reset()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		path := strings.TrimSpace(m.form.value(0))
		recoveryKey := m.form.value(1)
		ctx := m.ctx
		backups := m.backups
		return m, func() tea.Msg {
			return restoreDone{err: backups.RestoreFromPath(ctx, path, recoveryKey)}
		}
	}
	return m, m.form.update(msg)
}

func (m *BackupModel) cmdStatus() tea.Cmd {
	ctx := m.ctx
	backups := m.backups
	return func() tea.Msg {
		last, err := backups.LastBackupAt(ctx)
		return backupStatusLoaded{lastBackup: last, err: err}
	}
}

func (m *BackupModel) View() string {
	var b strings.Builder

	if m.restoring {
		b.WriteString("Backup file  │ ")
		b.WriteString(m.form.view(0))
		b.WriteString("\nRecovery key │ ")
		b.WriteString(m.form.view(1))
		b.WriteString("\n")
		if m.busy {
			b.WriteString("\n[Restoring...]\n")
		}
		writeStatus(&b, m.status, m.errMsg)
		return renderPage("RESTORE", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: restore │ esc: cancel")
	}

	b.WriteString("Last backup: ")
	b.WriteString(valueOrDash(m.lastBackup))
	b.WriteString("\n\nBackups hold notes, health entries and request answers.\n")
	b.WriteString("Personal info is never written to a backup.\n")
	if m.busy {
		b.WriteString("\n[Writing backup...]\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("BACKUP", strings.TrimRight(b.String(), "\n"), "b: back up now │ r: restore │ esc: back")
}
