package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-patient-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoModel records the messages it receives.
type echoModel struct {
	got   []tea.Msg
	inits int
}

func (m *echoModel) Init() tea.Cmd {
	m.inits++
	return nil
}

func (m *echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.got = append(m.got, msg)
	return m, nil
}

func (m *echoModel) View() string { return "echo" }

func TestRootModel_Navigation(t *testing.T) {
	start, dashboard := &echoModel{}, &echoModel{}
	r := NewRootModel(map[string]tea.Model{pageAuth: start, pageDashboard: dashboard}, pageAuth, models.AppBuildInfo{})

	model, cmd := r.Update(NavigateTo{Page: pageDashboard})
	r = model.(RootModel)
	assert.Nil(t, cmd)
	assert.Equal(t, pageDashboard, r.Page())
	assert.Equal(t, 1, dashboard.inits)

	model, cmd = r.Update(NavigateTo{Page: pageAuth, Payload: resetAuth{mode: LoginMode}})
	r = model.(RootModel)
	assert.Equal(t, pageAuth, r.Page())
	assert.Equal(t, resetAuth{mode: LoginMode}, run(t, cmd))
	assert.Zero(t, start.inits)

	model, _ = r.Update(NavigateTo{Page: "missing"})
	assert.Equal(t, pageAuth, model.(RootModel).Page())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r := NewRootModel(map[string]tea.Model{pageAuth: &echoModel{}}, pageAuth, models.AppBuildInfo{})

	model, cmd := r.Update(keyPress("ctrl+c"))

	assert.True(t, model.(RootModel).quitByUser)
	assert.Equal(t, tea.QuitMsg{}, run(t, cmd))
}

func TestRootModel_BuildInfoOnlyOnDashboard(t *testing.T) {
	auth, dashboard := &echoModel{}, &echoModel{}
	info := models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc1234")
	r := NewRootModel(map[string]tea.Model{pageAuth: auth, pageDashboard: dashboard}, pageAuth, info)

	model, _ := r.Update(keyPress("v"))
	r = model.(RootModel)
	assert.False(t, r.showBuildInfo)
	assert.Len(t, auth.got, 1)

	model, _ = r.Update(NavigateTo{Page: pageDashboard})
	model, _ = model.(RootModel).Update(keyPress("v"))
	r = model.(RootModel)
	require.True(t, r.showBuildInfo)
	view := r.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc1234")

	// Keys are swallowed while the window is open.
	model, _ = r.Update(keyPress("down"))
	r = model.(RootModel)
	assert.Empty(t, dashboard.got)

	model, _ = r.Update(keyPress("esc"))
	assert.False(t, model.(RootModel).showBuildInfo)
}

func TestBuildInfoWindow_Defaults(t *testing.T) {
	view := renderBuildInfoWindow(models.AppBuildInfo{})

	assert.Contains(t, view, "Version: N/A")
	assert.Contains(t, view, "Commit: N/A")
}

func TestRootModel_SignupLogoutLoginFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := NewRootModel(newPages(ctx, f.services), pageAuth, models.AppBuildInfo{})

	r = pump(t, r, keyPress("ctrl+t"))
	r = typeRoot(r, testUser)
	r = pump(t, r, keyPress("tab"))
	r = typeRoot(r, testPassword)
	r = pump(t, r, keyPress("enter"))

	require.Equal(t, pageRecovery, r.Page())
	recoveryKey, err := f.services.AccountService.RecoveryKey(ctx)
	require.NoError(t, err)
	assert.Contains(t, r.View(), recoveryKey)

	r = pump(t, r, keyPress("enter"))
	require.Equal(t, pageDashboard, r.Page())
	assert.Contains(t, r.View(), "Signed in as "+testUser)
	assert.Contains(t, r.View(), "Last backup: never")

	r = pump(t, r, keyPress("l"))
	require.Equal(t, pageAuth, r.Page())
	assert.False(t, f.session.IsActive())
	auth := r.pages[pageAuth].(*AuthModel)
	assert.Equal(t, LoginMode, auth.Mode())
	assert.Contains(t, r.View(), "Signed out")

	r = typeRoot(r, testUser)
	r = pump(t, r, keyPress("tab"))
	r = typeRoot(r, testPassword)
	r = pump(t, r, keyPress("enter"))

	assert.Equal(t, pageDashboard, r.Page())
	assert.True(t, f.session.IsActive())
}
