package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardItem struct {
	title string
	page  string
}

// Dashboard actions that are not pages.
const (
	actionRecoveryKey = "recovery-key"
	actionLogout      = "logout"
)

// DashboardModel is the main menu shown to a signed-in user.
type DashboardModel struct {
	ctx      context.Context
	accounts service.AccountService
	backups  service.BackupService

	now func() time.Time

	items      []dashboardItem
	idx        int
	lastBackup string
	remind     bool
	errMsg     string
}

func NewDashboardModel(ctx context.Context, accounts service.AccountService, backups service.BackupService) *DashboardModel {
	return &DashboardModel{
		ctx:      ctx,
		accounts: accounts,
		backups:  backups,
		now:      time.Now,
		items: []dashboardItem{
			{title: "Notes", page: pageNotes},
			{title: "Health diary", page: pageHealth},
			{title: "Personal info", page: pageProfile},
			{title: "Backup & restore", page: pageBackup},
			{title: "Articles & requests", page: pageFeed},
			{title: "Export to CSV", page: pageExport},
			{title: "Show recovery key", page: actionRecoveryKey},
			{title: "Log out", page: actionLogout},
		},
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	ctx := m.ctx
	backups := m.backups
	now := m.now()
	return func() tea.Msg {
		last, err := backups.LastBackupAt(ctx)
		if err != nil {
			return dashboardLoaded{err: err}
		}
		remind := last == nil || now.Sub(*last) >= service.BackupReminderAge
		return dashboardLoaded{lastBackup: last, remind: remind}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoaded:
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.lastBackup = formatTime(msg.lastBackup)
		m.remind = msg.remind
		return m, nil

	case recoveryKeyLoaded:
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageRecovery, showRecoveryKey{key: msg.key})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.logout):
			return m, m.logout()
		case key.Matches(msg, keys.enter):
			return m, m.open(m.items[m.idx].page)
		}
	}

	return m, nil
}

func (m *DashboardModel) open(page string) tea.Cmd {
	switch page {
	case actionLogout:
		return m.logout()
	case actionRecoveryKey:
		ctx := m.ctx
		accounts := m.accounts
		return func() tea.Msg {
			recoveryKey, err := accounts.RecoveryKey(ctx)
			return recoveryKeyLoaded{key: recoveryKey, err: err}
		}
	default:
		m.errMsg = ""
		return navigate(page, nil)
	}
}

func (m *DashboardModel) logout() tea.Cmd {
	m.accounts.Logout()
	m.idx = 0
	m.errMsg = ""
	m.lastBackup = ""
	m.remind = false
	return navigate(pageAuth, resetAuth{mode: LoginMode, status: "Signed out"})
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(valueOrDash(m.accounts.CurrentUser()))
	b.WriteString("\nLast backup: ")
	b.WriteString(valueOrDash(m.lastBackup))
	b.WriteString("\n")
	if m.remind {
		b.WriteString(errorStyle.Render(app.MsgBackupReminder))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := 0
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item.title))
	}
	for i, item := range m.items {
		b.WriteString(fmt.Sprintf("%s %d │ %-*s\n", cursor(i == m.idx), i+1, width, item.title))
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ l: log out │ v: version")
}
