package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/grid/internal/grid"
	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/ui"
)

// row renders one record. Cells stay plain text because the table
// measures and truncates them itself.
func (m Model) row(r model.Record) table.Row {
	t := ui.Current()
	mark := "  "
	switch {
	case r.ID == m.dragID:
		mark = t.SymDrag + " "
	case m.d.Session.Editing(r.ID):
		mark = t.SymEditing + " "
	}
	state := "-"
	if r.State != model.StateNone {
		state = "● " + r.State.Label()
	}
	actions := t.SymDelete + " delete  " + t.SymDrag + " drag"
	cells := make(table.Row, 0, len(grid.Columns))
	for _, c := range grid.Columns {
		switch c.Field {
		case grid.FieldTitle:
			cells = append(cells, mark+grid.Value(r, c.Field))
		case grid.FieldState:
			cells = append(cells, state)
		case grid.FieldActions:
			cells = append(cells, actions)
		default:
			cells = append(cells, grid.Value(r, c.Field))
		}
	}
	return cells
}

// layout sizes the table and preview for the current window.
func (m *Model) layout() {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	widths := grid.Widths(inner - 2*len(grid.Columns))
	cols := make([]table.Column, len(grid.Columns))
	for i, c := range grid.Columns {
		cols[i] = table.Column{Title: c.Label, Width: widths[i]}
	}
	m.table.SetColumns(cols)
	m.table.SetWidth(inner)

	tableH := tableHeight(m.height)
	m.table.SetHeight(tableH)

	previewH := m.height - tableH - 16
	if previewH < 3 {
		previewH = 3
	}
	m.preview.Width = inner
	m.preview.Height = previewH
	m.help.Width = m.width
	m.applyStyles()
}

// tableHeight is the table's share of the window, header included.
func tableHeight(h int) int {
	if th := (h - 12) / 2; th > 5 {
		return th
	}
	return 5
}

func (m *Model) applyStyles() {
	t := ui.Current()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.BorderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = t.Selected
	if m.mode == modeDrag {
		// The cursor is the drop target; the dragged row carries the drag mark.
		s.Selected = t.Dragging
	}
	m.table.SetStyles(s)

	hs := &m.help.Styles
	hs.ShortKey, hs.FullKey = t.Accent, t.Accent
	hs.ShortDesc, hs.FullDesc = t.Help, t.Help
	hs.ShortSeparator, hs.FullSeparator = t.Help, t.Help
}

func (m Model) View() string {
	t := ui.Current()
	recs := m.d.Store.Len()
	header := t.Title.Render("Editable grid") + "  " +
		t.Muted.Render(fmt.Sprintf("%d rows, %d editing", recs, len(m.d.Store.EditKeys())))

	lines := []string{header, m.table.View()}
	switch m.mode {
	case modeEdit:
		lines = append(lines, m.editorView())
	case modeDrag:
		if rec, err := m.d.Store.Get(m.dragID); err == nil {
			lines = append(lines, t.Accent.Render(fmt.Sprintf("%s dragging %q: pick a row and press enter, esc to cancel", t.SymDrag, rec.Title)))
		}
	}
	if m.status != "" {
		if m.failed {
			lines = append(lines, t.Error.Render("✖ "+m.status))
		} else {
			lines = append(lines, t.Muted.Render(m.status))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		ui.Panel("", lines, m.width),
		ui.Panel("Table data", []string{m.preview.View()}, m.width),
		m.help.View(helpKeys{k: m.keys, mode: m.mode}),
	)
}

func (m Model) editorView() string {
	t := ui.Current()
	lines := []string{t.Editing.Render(t.SymEditing + " Edit row")}
	for i, f := range m.ed.fields {
		if !f.isSelect() {
			lines = append(lines, f.input.View())
			continue
		}
		cursor := "  "
		if i == m.ed.focus {
			cursor = t.Accent.Render("> ")
		}
		lines = append(lines, cursor+f.col.Label+": "+t.Badge(f.choice))
	}
	for _, e := range m.ed.errs {
		lines = append(lines, t.Error.Render("✖ "+e))
	}
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
