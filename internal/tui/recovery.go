package tui

import (
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// RecoveryKeyModel shows a recovery key and blocks every key except copy and
// enter. enter acknowledges the key, forgets it and opens the dashboard.
type RecoveryKeyModel struct {
	key    string
	signup bool
	copied bool
	errMsg string
}

func NewRecoveryKeyModel() *RecoveryKeyModel {
	return &RecoveryKeyModel{}
}

func (m *RecoveryKeyModel) Init() tea.Cmd {
	return nil
}

func (m *RecoveryKeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showRecoveryKey:
		m.key = msg.key
		m.signup = msg.signup
		m.copied = false
		m.errMsg = ""
		return m, nil

	case copyResult:
		if msg.err != nil {
			m.errMsg = "clipboard is not available, copy the key by hand"
			return m, nil
		}
		m.copied = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			if m.key == "" {
				return m, nil
			}
			value := m.key
			return m, func() tea.Msg { return copyResult{err: writeClipboard(value)} }
		case key.Matches(msg, keys.enter):
			m.key = ""
			m.copied = false
			m.errMsg = ""
			return m, navigate(pageDashboard, nil)
		}
	}

	return m, nil
}

func (m *RecoveryKeyModel) View() string {
	var b strings.Builder

	if m.signup {
		b.WriteString(app.MsgRecoveryKeyNotice)
		b.WriteString("\n\n")
	}
	b.WriteString(keyBoxStyle.Render(valueOrDash(m.key)))
	b.WriteString("\n")

	status := ""
	if m.copied {
		status = "Copied to clipboard"
	}
	writeStatus(&b, status, m.errMsg)

	return renderPage("RECOVERY KEY", strings.TrimRight(b.String(), "\n"), "c: copy │ enter: I have saved it")
}
