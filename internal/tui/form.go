package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a column of text inputs with a single focused field.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm(placeholders ...string) form {
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 256
		in.Width = 40
		inputs[i] = in
	}
	f := form{inputs: inputs}
	f.focusOn(0)
	return f
}

func (f *form) mask(i int) {
	f.inputs[i].EchoMode = textinput.EchoPassword
	f.inputs[i].EchoCharacter = '*'
}

func (f *form) focusOn(i int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) next() {
	f.focusOn((f.focus + 1) % len(f.inputs))
}

func (f *form) prev() {
	f.focusOn((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

// reset clears every field and focuses the first one.
func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.focusOn(0)
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(i int) string {
	return "[" + f.inputs[i].View() + "]"
}
