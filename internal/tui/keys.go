package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	toggleMode key.Binding
	save       key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	copy       key.Binding
	yes        key.Binding
	no         key.Binding
	backup     key.Binding
	restore    key.Binding
	accept     key.Binding
	decline    key.Binding
	logout     key.Binding
	export     key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	toggleMode: key.NewBinding(key.WithKeys("ctrl+t")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
	backup:     key.NewBinding(key.WithKeys("b")),
	restore:    key.NewBinding(key.WithKeys("r")),
	accept:     key.NewBinding(key.WithKeys("a")),
	decline:    key.NewBinding(key.WithKeys("x")),
	logout:     key.NewBinding(key.WithKeys("l")),
	export:     key.NewBinding(key.WithKeys("ctrl+e")),
}
