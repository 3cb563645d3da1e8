package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down      key.Binding
	Add, Delete   key.Binding
	Edit, Discard key.Binding
	Grab, Drop    key.Binding
	Cancel        key.Binding
	Abandon       key.Binding
	NextField     key.Binding
	CycleState    key.Binding
	Commit        key.Binding
	PreviewUp     key.Binding
	PreviewDown   key.Binding
	Help, Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Discard:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "discard edit")),
		Grab:        key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "drag")),
		Drop:        key.NewBinding(key.WithKeys("enter", "m", " "), key.WithHelp("enter", "drop")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Abandon:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "discard edit")),
		NextField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		CycleState:  key.NewBinding(key.WithKeys("ctrl+s", "left", "right"), key.WithHelp("←/→", "state")),
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		PreviewUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "json up")),
		PreviewDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "json down")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys adapts the key map to the help bubble for the current mode.
type helpKeys struct {
	k    keyMap
	mode mode
}

func (h helpKeys) ShortHelp() []key.Binding {
	switch h.mode {
	case modeEdit:
		return []key.Binding{h.k.Commit, h.k.NextField, h.k.CycleState, h.k.Cancel, h.k.Abandon}
	case modeDrag:
		return []key.Binding{h.k.Up, h.k.Down, h.k.Drop, h.k.Cancel}
	}
	return []key.Binding{h.k.Add, h.k.Edit, h.k.Delete, h.k.Grab, h.k.Help, h.k.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Add, h.k.Delete},
		{h.k.Edit, h.k.Discard, h.k.Grab, h.k.Drop},
		{h.k.NextField, h.k.CycleState, h.k.Commit, h.k.Cancel, h.k.Abandon},
		{h.k.PreviewUp, h.k.PreviewDown, h.k.Help, h.k.Quit},
	}
}
