package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var profileLabels = []string{
	"Name          ",
	"Age           ",
	"Height        ",
	"Weight        ",
	"Gender        ",
	"Patient number",
}

// ProfileModel edits the patient's personal info.
type ProfileModel struct {
	ctx  context.Context
	data service.UserDataService

	form    form
	loading bool
	saving  bool
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, data service.UserDataService) *ProfileModel {
	return &ProfileModel{
		ctx:  ctx,
		data: data,
		form: newForm("name", "age", "cm", "kg", "gender", "number"),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	m.form.reset()

	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		info, err := data.PersonalInfo(ctx)
		return profileLoaded{info: info, err: err}
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoaded:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		if msg.info != nil {
			m.fill(*msg.info)
		}
		return m, nil

	case profileSaved:
		m.saving = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.status = "Personal info saved"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.saving || m.loading {
				return m, nil
			}
			m.saving = true
			m.status = ""
			m.errMsg = ""
			info := m.info()
			ctx := m.ctx
			data := m.data
			return m, func() tea.Msg {
				return profileSaved{err: data.SavePersonalInfo(ctx, info)}
			}
		}
	}

	return m, m.form.update(msg)
}

func (m *ProfileModel) fill(info models.PersonalInfo) {
	for i, v := range []string{info.Name, info.Age, info.Height, info.Weight, info.Gender, info.PatientNumber} {
		m.form.set(i, v)
	}
}

func (m *ProfileModel) info() models.PersonalInfo {
	return models.PersonalInfo{
		Name:          strings.TrimSpace(m.form.value(0)),
		Age:           strings.TrimSpace(m.form.value(1)),
		Height:        strings.TrimSpace(m.form.value(2)),
		Weight:        strings.TrimSpace(m.form.value(3)),
		Gender:        strings.TrimSpace(m.form.value(4)),
		PatientNumber: strings.TrimSpace(m.form.value(5)),
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		for i, label := range profileLabels {
			b.WriteString(label)
			b.WriteString(" │ ")
			b.WriteString(m.form.view(i))
			b.WriteString("\n")
		}
	}
	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("PERSONAL INFO", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: back")
}
