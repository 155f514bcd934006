package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	exportFieldStart = iota
	exportFieldEnd
	exportFieldDir
)

// ExportModel writes the selected sections to CSV files. F1..F3 toggle the
// sections.
type ExportModel struct {
	ctx    context.Context
	export service.ExportService

	health   bool
	notes    bool
	personal bool
	form     form
	busy     bool
	paths    []string
	errMsg   string
}

var (
	toggleHealth   = key.NewBinding(key.WithKeys("f1"))
	toggleNotes    = key.NewBinding(key.WithKeys("f2"))
	togglePersonal = key.NewBinding(key.WithKeys("f3"))
)

func NewExportModel(ctx context.Context, export service.ExportService) *ExportModel {
	return &ExportModel{
		ctx:    ctx,
		export: export,
		health: true,
		notes:  true,
		form:   newForm("YYYY-MM-DD", "YYYY-MM-DD", "."),
	}
}

func (m *ExportModel) Init() tea.Cmd {
	m.paths = nil
	m.errMsg = ""
	return nil
}

func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDone:
		m.busy = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.paths = msg.paths
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, toggleHealth):
			m.health = !m.health
			return m, nil
		case key.Matches(msg, toggleNotes):
			m.notes = !m.notes
			return m, nil
		case key.Matches(msg, togglePersonal):
			m.personal = !m.personal
			return m, nil
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter, keys.export):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.paths = nil
			m.errMsg = ""
			opts := m.options()
			ctx := m.ctx
			export := m.export
			return m, func() tea.Msg {
				paths, err := export.Export(ctx, opts)
				return exportDone{paths: paths, err: err}
			}
		}
	}

	return m, m.form.update(msg)
}

func (m *ExportModel) options() service.ExportOptions {
	return service.ExportOptions{
		Dir: strings.TrimSpace(m.form.value(exportFieldDir)),
		Range: models.DateRange{
			Start: strings.TrimSpace(m.form.value(exportFieldStart)),
			End:   strings.TrimSpace(m.form.value(exportFieldEnd)),
		},
		Health:       m.health,
		Notes:        m.notes,
		PersonalInfo: m.personal,
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m *ExportModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s F1 Health diary\n", checkbox(m.health)))
	b.WriteString(fmt.Sprintf("%s F2 Notes\n", checkbox(m.notes)))
	b.WriteString(fmt.Sprintf("%s F3 Personal info\n\n", checkbox(m.personal)))
	b.WriteString("From      │ ")
	b.WriteString(m.form.view(exportFieldStart))
	b.WriteString("\nTo        │ ")
	b.WriteString(m.form.view(exportFieldEnd))
	b.WriteString("\nDirectory │ ")
	b.WriteString(m.form.view(exportFieldDir))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n[Exporting...]\n")
	}
	status := ""
	if len(m.paths) > 0 {
		status = "Written:\n" + strings.Join(m.paths, "\n")
	}
	writeStatus(&b, status, m.errMsg)

	return renderPage("EXPORT", strings.TrimRight(b.String(), "\n"), "F1-F3: sections │ tab: next field │ enter: export │ esc: back")
}
