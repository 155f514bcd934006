package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	healthFieldDate = iota
	healthFieldWater
	healthFieldOutput
	healthFieldPain
)

// HealthModel shows the health diary and edits one day at a time. Saving a
// day that already has an entry replaces it.
type HealthModel struct {
	ctx  context.Context
	data service.UserDataService
	now  func() time.Time

	entries []models.HealthEntry
	idx     int
	loading bool
	editing bool
	form    form
	saving  bool
	status  string
	errMsg  string
}

func NewHealthModel(ctx context.Context, data service.UserDataService) *HealthModel {
	return &HealthModel{
		ctx:  ctx,
		data: data,
		now:  time.Now,
		form: newForm("YYYY-MM-DD", "ml", "ml", "0-10"),
	}
}

func (m *HealthModel) Init() tea.Cmd {
	m.editing = false
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *HealthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthLoaded:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = max(len(m.entries)-1, 0)
		}
		return m, nil

	case healthEntryLoaded:
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.openForm(msg.entry)
		return m, nil

	case healthSaved:
		m.saving = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.editing = false
		m.status = "Entry saved"
		return m, m.cmdLoad()

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.editing {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *HealthModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDashboard, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadEntry(m.now().Format(models.HealthDateLayout))
	case key.Matches(msg, keys.edit, keys.enter):
		if m.idx < len(m.entries) {
			m.openForm(m.entries[m.idx])
		}
	}
	return m, nil
}

func (m *HealthModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.next()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.prev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		entry, err := m.entryFromForm()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.cmdSave(entry)
	}
	return m, m.form.update(msg)
}

func (m *HealthModel) openForm(entry models.HealthEntry) {
	m.editing = true
	m.status = ""
	m.errMsg = ""
	m.form.reset()
	date := entry.Date
	if date == "" {
		date = m.now().Format(models.HealthDateLayout)
	}
	m.form.set(healthFieldDate, date)
	m.form.set(healthFieldWater, strconv.Itoa(entry.WaterIntake))
	m.form.set(healthFieldOutput, strconv.Itoa(entry.ColostomyOutput))
	m.form.set(healthFieldPain, strconv.Itoa(entry.PainLevel))
}

func (m *HealthModel) entryFromForm() (models.HealthEntry, error) {
	entry := models.HealthEntry{Date: strings.TrimSpace(m.form.value(healthFieldDate))}

	fields := []struct {
		name  string
		input int
		dest  *int
	}{
		{"water intake", healthFieldWater, &entry.WaterIntake},
		{"colostomy output", healthFieldOutput, &entry.ColostomyOutput},
		{"pain level", healthFieldPain, &entry.PainLevel},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(m.form.value(f.input))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.HealthEntry{}, fmt.Errorf("%s must be a whole number", f.name)
		}
		*f.dest = n
	}
	return entry, nil
}

func (m *HealthModel) View() string {
	var b strings.Builder

	if m.editing {
		b.WriteString("Date             │ ")
		b.WriteString(m.form.view(healthFieldDate))
		b.WriteString("\nWater intake     │ ")
		b.WriteString(m.form.view(healthFieldWater))
		b.WriteString("\nColostomy output │ ")
		b.WriteString(m.form.view(healthFieldOutput))
		b.WriteString("\nPain level       │ ")
		b.WriteString(m.form.view(healthFieldPain))
		b.WriteString("\n")
		if m.saving {
			b.WriteString("\n[Saving...]\n")
		}
		writeStatus(&b, "", m.errMsg)
		return renderPage("HEALTH ENTRY", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save │ esc: cancel")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("No entries yet\n")
	default:
		b.WriteString("  Date       │ Water │ Output │ Pain\n")
		for i, e := range m.entries {
			b.WriteString(fmt.Sprintf("%s %s │ %5d │ %6d │ %4d\n", cursor(i == m.idx), e.Date, e.WaterIntake, e.ColostomyOutput, e.PainLevel))
		}
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("HEALTH DIARY", strings.TrimRight(b.String(), "\n"), "n: today │ e: edit │ esc: back")
}

func (m *HealthModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		entries, err := data.HealthHistory(ctx)
		return healthLoaded{entries: entries, err: err}
	}
}

func (m *HealthModel) cmdLoadEntry(date string) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		entry, found, err := data.HealthEntry(ctx, date)
		if err == nil && !found {
			entry = models.HealthEntry{Date: date}
		}
		return healthEntryLoaded{entry: entry, found: found, err: err}
	}
}

func (m *HealthModel) cmdSave(entry models.HealthEntry) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		return healthSaved{err: data.SaveHealthEntry(ctx, entry)}
	}
}
