package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type notesStage int

const (
	notesList notesStage = iota
	notesEdit
	notesConfirmDelete
)

// NotesModel lists, adds, edits and deletes notes.
type NotesModel struct {
	ctx  context.Context
	data service.UserDataService

	notes   []models.Note
	idx     int
	loading bool
	stage   notesStage
	editID  int64
	editor  textarea.Model
	saving  bool
	status  string
	errMsg  string
}

func NewNotesModel(ctx context.Context, data service.UserDataService) *NotesModel {
	editor := textarea.New()
	editor.Placeholder = "Write a note..."
	editor.SetWidth(60)
	editor.SetHeight(6)

	return &NotesModel{ctx: ctx, data: data, editor: editor}
}

func (m *NotesModel) Init() tea.Cmd {
	m.stage = notesList
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoaded:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = max(len(m.notes)-1, 0)
		}
		return m, nil

	case noteSaved:
		m.saving = false
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.closeEditor()
		m.status = "Note saved"
		return m, m.cmdLoad()

	case noteDeleted:
		m.stage = notesList
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.status = "Note deleted"
		return m, m.cmdLoad()

	case tea.KeyMsg:
		switch m.stage {
		case notesEdit:
			return m.updateEditor(msg)
		case notesConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.stage == notesEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *NotesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageDashboard, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		return m, m.openEditor(0, "")
	case key.Matches(msg, keys.edit, keys.enter):
		if note, ok := m.current(); ok {
			return m, m.openEditor(note.ID, note.Text)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.stage = notesConfirmDelete
			m.status = ""
			m.errMsg = ""
		}
	}
	return m, nil
}

func (m *NotesModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeEditor()
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.cmdSave(m.editID, m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		note, ok := m.current()
		if !ok {
			m.stage = notesList
			return m, nil
		}
		return m, m.cmdDelete(note.ID)
	case key.Matches(msg, keys.no):
		m.stage = notesList
	}
	return m, nil
}

func (m *NotesModel) openEditor(id int64, text string) tea.Cmd {
	m.stage = notesEdit
	m.editID = id
	m.status = ""
	m.errMsg = ""
	m.editor.SetValue(text)
	return m.editor.Focus()
}

func (m *NotesModel) closeEditor() {
	m.stage = notesList
	m.editID = 0
	m.editor.Reset()
	m.editor.Blur()
}

func (m *NotesModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m *NotesModel) View() string {
	var b strings.Builder

	switch m.stage {
	case notesEdit:
		title := "NEW NOTE"
		if m.editID != 0 {
			title = "EDIT NOTE"
		}
		b.WriteString(m.editor.View())
		b.WriteString("\n")
		if m.saving {
			b.WriteString("\n[Saving...]\n")
		}
		writeStatus(&b, "", m.errMsg)
		return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")

	case notesConfirmDelete:
		note, _ := m.current()
		b.WriteString(fmt.Sprintf("Delete note %q?\n", fitText(note.Text, 40)))
		return renderPage("DELETE NOTE", b.String(), "y: yes │ n: no")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet\n")
	default:
		for i, note := range m.notes {
			b.WriteString(fmt.Sprintf("%s %s │ %s\n", cursor(i == m.idx), noteTime(note.ID), fitText(note.Text, 50)))
		}
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"), "n: new │ e: edit │ d: delete │ esc: back")
}

func noteTime(id int64) string {
	return time.UnixMilli(id).Local().Format("2006-01-02 15:04")
}

func (m *NotesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		notes, err := data.ListNotes(ctx)
		return notesLoaded{notes: notes, err: err}
	}
}

func (m *NotesModel) cmdSave(id int64, text string) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		if id == 0 {
			_, err := data.AddNote(ctx, text)
			return noteSaved{err: err}
		}
		return noteSaved{err: data.EditNote(ctx, id, text)}
	}
}

func (m *NotesModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	data := m.data
	return func() tea.Msg {
		return noteDeleted{err: data.DeleteNote(ctx, id)}
	}
}
