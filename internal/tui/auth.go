// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AuthMode selects which account operation the auth screen submits.
type AuthMode int

const (
	// LoginMode signs an existing user in.
	LoginMode AuthMode = iota
	// SignupMode creates a new account.
	SignupMode
)

func (m AuthMode) String() string {
	if m == SignupMode {
		return "sign up"
	}
	return "log in"
}

// AuthModel is the login/sign-up screen. ctrl+t toggles the mode; enter
// submits the form to [service.AccountService]. A rejected submit shows the
// error, clears both fields and keeps the mode. A successful sign-up opens
// the recovery key page, a successful login opens the dashboard.
type AuthModel struct {
	ctx      context.Context
	accounts service.AccountService

	mode       AuthMode
	form       form
	submitting bool
	status     string
	errMsg     string
}

// NewAuthModel creates an [AuthModel] in [LoginMode].
func NewAuthModel(ctx context.Context, accounts service.AccountService) *AuthModel {
	f := newForm("username", "password")
	f.inputs[0].CharLimit = 64
	f.mask(1)

	return &AuthModel{
		ctx:      ctx,
		accounts: accounts,
		mode:     LoginMode,
		form:     f,
	}
}

// Mode returns the current mode.
func (m *AuthModel) Mode() AuthMode {
	return m.mode
}

func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResult:
		m.submitting = false
		m.form.reset()
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		if msg.mode == SignupMode {
			return m, navigate(pageRecovery, showRecoveryKey{key: msg.recoveryKey, signup: true})
		}
		return m, navigate(pageDashboard, nil)

	case resetAuth:
		m.mode = msg.mode
		m.submitting = false
		m.errMsg = ""
		m.status = msg.status
		m.form.reset()
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toggleMode):
			if m.submitting {
				return m, nil
			}
			if m.mode == LoginMode {
				m.mode = SignupMode
			} else {
				m.mode = LoginMode
			}
			m.errMsg = ""
			m.status = ""
			return m, nil
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			m.status = ""
			return m, m.cmdSubmit(m.mode, m.form.value(0), m.form.value(1))
		}
	}

	return m, m.form.update(msg)
}

func (m *AuthModel) View() string {
	var b strings.Builder

	b.WriteString("Mode: ")
	b.WriteString(m.mode.String())
	b.WriteString("\n\n")
	b.WriteString("Username │ ")
	b.WriteString(m.form.view(0))
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.form.view(1))
	b.WriteString("\n")

	switch {
	case m.submitting && m.mode == SignupMode:
		b.WriteString("\n[Creating account...]\n")
	case m.submitting:
		b.WriteString("\n[Signing in...]\n")
	case m.mode == SignupMode:
		b.WriteString("\n[Create account]\n")
	default:
		b.WriteString("\n[Log in]\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	title := "LOG IN"
	toggle := "ctrl+t: create an account"
	if m.mode == SignupMode {
		title = "CREATE ACCOUNT"
		toggle = "ctrl+t: back to log in"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ "+toggle)
}

func (m *AuthModel) cmdSubmit(mode AuthMode, username, password string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		if mode == SignupMode {
			created, err := accounts.CreateAccount(ctx, username, password)
			return authResult{mode: mode, username: username, recoveryKey: created.RecoveryKey, err: err}
		}
		_, err := accounts.Login(ctx, username, password)
		return authResult{mode: mode, username: username, err: err}
	}
}
