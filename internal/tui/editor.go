package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/grid/internal/grid"
	"github.com/idilsaglam/grid/internal/model"
)

// editorField is one editable column: a text input, or a select when the
// column declares options.
type editorField struct {
	col    grid.Column
	input  textinput.Model
	choice model.State
}

func (f *editorField) isSelect() bool { return f != nil && len(f.col.Options) > 0 }

// editor edits one record; its fields follow the editable columns.
type editor struct {
	id     string
	fields []editorField
	focus  int
	errs   []string
}

func newEditor(cols []grid.Column) editor {
	var e editor
	for _, c := range cols {
		f := editorField{col: c}
		if len(c.Options) == 0 {
			f.input = textinput.New()
			f.input.Prompt = c.Label + ": "
			f.input.Placeholder = c.Label + "..."
			f.input.CharLimit = 200
		}
		e.fields = append(e.fields, f)
	}
	return e
}

// field returns the editor field for a column, or nil.
func (e *editor) field(name grid.Field) *editorField {
	for i := range e.fields {
		if e.fields[i].col.Field == name {
			return &e.fields[i]
		}
	}
	return nil
}

func (e *editor) focused() *editorField {
	if e.focus < 0 || e.focus >= len(e.fields) {
		return nil
	}
	return &e.fields[e.focus]
}

func (e *editor) firstSelect() *editorField {
	for i := range e.fields {
		if e.fields[i].isSelect() {
			return &e.fields[i]
		}
	}
	return nil
}

// cycle moves a select field to its next option; an unset value takes the first.
func (e *editor) cycle(f *editorField) {
	if !f.isSelect() {
		return
	}
	opts := f.col.Options
	for i, o := range opts {
		if o == f.choice {
			f.choice = opts[(i+1)%len(opts)]
			return
		}
	}
	f.choice = opts[0]
}

func (e *editor) load(id string, r model.Record) {
	e.id = id
	e.errs = nil
	for i := range e.fields {
		f := &e.fields[i]
		if f.isSelect() {
			f.choice = model.State(grid.Raw(r, f.col.Field))
			continue
		}
		f.input.SetValue(grid.Raw(r, f.col.Field))
		f.input.CursorEnd()
	}
}

func (e *editor) clear() {
	e.id = ""
	e.errs = nil
	for i := range e.fields {
		if f := &e.fields[i]; !f.isSelect() {
			f.input.SetValue("")
			f.input.Blur()
		}
	}
}

func (e *editor) setFocus(i int) tea.Cmd {
	n := len(e.fields)
	if n == 0 {
		return nil
	}
	e.focus = (i%n + n) % n
	for j := range e.fields {
		if f := &e.fields[j]; !f.isSelect() {
			f.input.Blur()
		}
	}
	if f := e.focused(); !f.isSelect() {
		return f.input.Focus()
	}
	return nil
}

// patch collects every field, so a commit writes them as one group.
func (e *editor) patch() model.Patch {
	var p model.Patch
	for _, f := range e.fields {
		switch f.col.Field {
		case grid.FieldTitle:
			v := f.input.Value()
			p.Title = &v
		case grid.FieldDescription:
			v := f.input.Value()
			p.Description = &v
		case grid.FieldState:
			st := f.choice
			p.State = &st
		}
	}
	return p
}
