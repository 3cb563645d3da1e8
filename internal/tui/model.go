// Package tui is the interactive grid: a table of records with inline
// editing, keyboard drag to reorder and a live JSON preview.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/grid/internal/config"
	"github.com/idilsaglam/grid/internal/export"
	"github.com/idilsaglam/grid/internal/grid"
	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/validate"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeDrag
)

// Model is the Bubble Tea model. All store access goes through the
// dispatcher, one event at a time.
type Model struct {
	d    *grid.Dispatcher
	cfg  config.Config
	keys keyMap
	mode mode

	table   table.Model
	ids     []string // row index -> record id
	preview viewport.Model
	help    help.Model
	ed      editor

	dragID string
	status string
	failed bool

	width, height int
}

// New builds the model over d's store.
func New(d *grid.Dispatcher, cfg config.Config) Model {
	m := Model{
		d:       d,
		cfg:     cfg,
		keys:    defaultKeys(),
		table:   table.New(table.WithFocused(true)),
		preview: viewport.New(0, 0),
		help:    help.New(),
		ed:      newEditor(grid.Editable()),
		width:   100,
		height:  32,
	}
	m.layout()
	m.refresh()
	return m
}

// Run starts the program and returns the records as they were on quit.
func Run(d *grid.Dispatcher, cfg config.Config) ([]model.Record, error) {
	p := tea.NewProgram(New(d, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return d.Store.All(), nil
}

func emit(ev tea.Msg) tea.Cmd { return func() tea.Msg { return ev } }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case grid.AddRow:
		r := m.d.Add(msg)
		m.refresh()
		m.table.SetCursor(m.d.Store.Index(r.ID))
		cmd := m.openEditor(r.ID)
		m.setStatus("row added")
		return m, cmd

	case grid.DeleteRow:
		if err := m.d.Delete(msg); err != nil {
			m.fail(err)
			return m, nil
		}
		if m.ed.id == msg.ID {
			m.closeEditor()
		}
		m.refresh()
		m.setStatus("row deleted")
		return m, nil

	case grid.DragEnd:
		m.mode = modeBrowse
		m.dragID = ""
		moved, err := m.d.DragEnd(msg)
		m.applyStyles()
		m.refresh()
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.table.SetCursor(m.d.Store.Index(msg.Dragged))
		if moved {
			m.setStatus("row moved")
		} else {
			m.setStatus("drag cancelled")
		}
		return m, nil

	case grid.BeginEdit:
		if err := m.d.BeginEdit(msg); err != nil {
			m.fail(err)
			return m, nil
		}
		m.refresh()
		cmd := m.openEditor(msg.ID)
		return m, cmd

	case grid.CancelEdit:
		m.d.CancelEdit(msg)
		if m.ed.id == msg.ID {
			m.closeEditor()
		}
		m.refresh()
		m.setStatus("edit discarded")
		return m, nil

	case grid.CommitEdit:
		_, err := m.d.Commit(msg)
		var ve *validate.Error
		switch {
		case errors.As(err, &ve):
			m.ed.errs = ve.Messages()
			return m, nil
		case err != nil:
			m.closeEditor()
			m.refresh()
			m.fail(err)
			return m, nil
		}
		m.closeEditor()
		m.refresh()
		m.setStatus("saved")
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeDrag:
			return m.updateDrag(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	id, ok := m.selectedID()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		return m, emit(grid.AddRow{})
	case key.Matches(msg, m.keys.Delete):
		if ok {
			return m, emit(grid.DeleteRow{ID: id})
		}
	case key.Matches(msg, m.keys.Edit):
		if !ok {
			break
		}
		if m.d.Session.Editing(id) {
			cmd = m.openEditor(id)
			return m, cmd
		}
		return m, emit(grid.BeginEdit{ID: id})
	case key.Matches(msg, m.keys.Discard):
		if ok && m.d.Session.Editing(id) {
			return m, emit(grid.CancelEdit{ID: id})
		}
	case key.Matches(msg, m.keys.Grab):
		if ok {
			m.mode = modeDrag
			m.dragID = id
			m.applyStyles()
			m.refresh()
			m.setStatus("")
		}
	case key.Matches(msg, m.keys.PreviewUp, m.keys.PreviewDown):
		m.preview, cmd = m.preview.Update(msg)
	default:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, emit(grid.DragEnd{Dragged: m.dragID})
	case key.Matches(msg, m.keys.Drop):
		over, _ := m.selectedID()
		return m, emit(grid.DragEnd{Dragged: m.dragID, Over: over})
	case key.Matches(msg, m.keys.Up, m.keys.Down):
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Leave the row in editing with its unsaved values.
		_ = m.d.Session.SetDraft(m.ed.id, m.ed.patch())
		m.closeEditor()
		m.refresh()
		m.setStatus("draft kept")
		return m, nil
	case key.Matches(msg, m.keys.Abandon):
		return m, emit(grid.CancelEdit{ID: m.ed.id})
	case key.Matches(msg, m.keys.Commit):
		return m, emit(grid.CommitEdit{ID: m.ed.id, Patch: m.ed.patch()})
	case key.Matches(msg, m.keys.NextField):
		step := 1
		if msg.String() == "shift+tab" {
			step = -1
		}
		cmd := m.ed.setFocus(m.ed.focus + step)
		return m, cmd
	case msg.String() == "ctrl+s":
		m.ed.cycle(m.ed.firstSelect())
		return m, nil
	case m.ed.focused().isSelect() && key.Matches(msg, m.keys.CycleState):
		m.ed.cycle(m.ed.focused())
		return m, nil
	}
	f := m.ed.focused()
	if f == nil || f.isSelect() {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

// openEditor loads the record, overlaid with any saved draft.
func (m *Model) openEditor(id string) tea.Cmd {
	rec, err := m.d.Store.Get(id)
	if err != nil {
		m.fail(err)
		return nil
	}
	if p, ok := m.d.Session.Draft(id); ok {
		rec = p.Apply(rec)
	}
	m.ed.load(id, rec)
	m.mode = modeEdit
	m.setStatus("")
	return m.ed.setFocus(0)
}

func (m *Model) closeEditor() {
	m.ed.clear()
	if m.mode == modeEdit {
		m.mode = modeBrowse
	}
}

func (m Model) selectedID() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.ids) {
		return "", false
	}
	return m.ids[i], true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.failed = true
}

// refresh rebuilds the table rows and the JSON preview from the store.
func (m *Model) refresh() {
	recs := m.d.Store.All()
	rows := make([]table.Row, 0, len(recs))
	m.ids = make([]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, m.row(r))
		m.ids = append(m.ids, r.ID)
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); len(rows) > 0 && c >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}

	text := export.Text(recs, m.cfg.JSONIndent)
	if m.cfg.Highlight {
		text = export.Highlight(text, m.cfg.HighlightStyle)
	}
	m.preview.SetContent(text)
}
