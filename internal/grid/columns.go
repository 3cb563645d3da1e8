// Package grid declares the table columns and turns user intents into
// store and edit-session calls.
package grid

import (
	"errors"

	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/validate"
)

// Field names a record field shown in the grid.
type Field string

const (
	FieldTitle       Field = "title"
	FieldState       Field = "state"
	FieldDescription Field = "description"
	FieldActions     Field = "actions"
)

// Column is what the renderer needs to know about one grid column.
// Width is a share of the table width in percent; 0 splits what is left.
type Column struct {
	Field    Field
	Label    string
	Width    int
	Editable bool
	Rules    []validate.Rule
	Options  []model.State
}

// Columns in display order.
var Columns = []Column{
	{Field: FieldTitle, Label: "Activity", Width: 30, Editable: true, Rules: validate.TitleRules},
	{Field: FieldState, Label: "State", Width: 14, Editable: true, Options: model.States},
	{Field: FieldDescription, Label: "Description", Editable: true},
	{Field: FieldActions, Label: "Actions", Width: 16},
}

// Value returns the display text of f for r.
func Value(r model.Record, f Field) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldState:
		return r.State.Label()
	case FieldDescription:
		return r.Description
	}
	return ""
}

// Raw returns the stored value of f for r, which is what rules check.
func Raw(r model.Record, f Field) string {
	if f == FieldState {
		return string(r.State)
	}
	return Value(r, f)
}

// Lookup returns the column declared for f.
func Lookup(f Field) (Column, bool) {
	for _, c := range Columns {
		if c.Field == f {
			return c, true
		}
	}
	return Column{}, false
}

// Editable lists the columns the editor shows, in display order.
func Editable() []Column {
	var out []Column
	for _, c := range Columns {
		if c.Editable {
			out = append(out, c)
		}
	}
	return out
}

// Validate runs every editable column's rules against r and reports all
// failures together.
func Validate(r model.Record) error {
	var errs []*validate.Error
	for _, c := range Editable() {
		if len(c.Rules) == 0 {
			continue
		}
		var ve *validate.Error
		if errors.As(validate.Field(string(c.Field), c.Rules, Raw(r, c.Field)), &ve) {
			errs = append(errs, ve)
		}
	}
	return validate.Join(errs...)
}

// Widths spreads total cells over the columns by their percentage.
func Widths(total int) []int {
	out := make([]int, len(Columns))
	used, flex := 0, 0
	for i, c := range Columns {
		if c.Width == 0 {
			flex++
			continue
		}
		out[i] = total * c.Width / 100
		used += out[i]
	}
	if flex > 0 {
		rest := (total - used) / flex
		if rest < 1 {
			rest = 1
		}
		for i, c := range Columns {
			if c.Width == 0 {
				out[i] = rest
			}
		}
	}
	return out
}
