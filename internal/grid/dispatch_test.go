package grid

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grid/internal/edit"
	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/store"
	"github.com/idilsaglam/grid/internal/validate"
)

func newDispatcher(t *testing.T, n int) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	i := 0
	s := store.New(store.WithIDFunc(func() string {
		i++
		return fmt.Sprintf("r%d", i)
	}))
	s.Seed(n, false)
	var buf bytes.Buffer
	return NewDispatcher(s, log.New(&buf)), &buf
}

func order(d *Dispatcher) []string {
	var out []string
	for _, r := range d.Store.All() {
		out = append(out, r.ID)
	}
	return out
}

func TestDragEnd(t *testing.T) {
	tests := []struct {
		name  string
		ev    DragEnd
		moved bool
		want  []string
	}{
		{"no target", DragEnd{Dragged: "r2"}, false, []string{"r1", "r2", "r3", "r4"}},
		{"same row", DragEnd{Dragged: "r2", Over: "r2"}, false, []string{"r1", "r2", "r3", "r4"}},
		{"up", DragEnd{Dragged: "r4", Over: "r2"}, true, []string{"r1", "r4", "r2", "r3"}},
		{"down one", DragEnd{Dragged: "r1", Over: "r2"}, true, []string{"r2", "r1", "r3", "r4"}},
		{"down to last", DragEnd{Dragged: "r2", Over: "r4"}, true, []string{"r1", "r3", "r4", "r2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newDispatcher(t, 4)
			moved, err := d.DragEnd(tc.ev)
			require.NoError(t, err)
			assert.Equal(t, tc.moved, moved)
			assert.Equal(t, tc.want, order(d))
		})
	}
}

func TestDragEndMissingIsLogged(t *testing.T) {
	d, buf := newDispatcher(t, 2)
	_, err := d.DragEnd(DragEnd{Dragged: "gone", Over: "r1"})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, buf.String(), "missing record")
}

func TestAddDelete(t *testing.T) {
	d, _ := newDispatcher(t, 1)
	r := d.Add(AddRow{})
	assert.Equal(t, []string{"r1", r.ID}, order(d))
	assert.True(t, d.Session.Editing(r.ID), "a new row opens for editing")
	assert.Equal(t, []string{r.ID}, d.Store.EditKeys())

	require.NoError(t, d.Delete(DeleteRow{ID: r.ID}))
	assert.Equal(t, []string{"r1"}, order(d))
	assert.Empty(t, d.Store.EditKeys())

	assert.ErrorIs(t, d.Delete(DeleteRow{ID: r.ID}), store.ErrNotFound)
}

func TestCommitAndCancel(t *testing.T) {
	d, _ := newDispatcher(t, 1)
	require.NoError(t, d.BeginEdit(BeginEdit{ID: "r1"}))

	_, err := d.Commit(CommitEdit{ID: "r1", Patch: model.Patch{Title: model.Str("abc")}})
	var ve *validate.Error
	require.ErrorAs(t, err, &ve)
	assert.True(t, d.Session.Editing("r1"))

	rec, err := d.Commit(CommitEdit{ID: "r1", Patch: model.Patch{Title: model.Str("abc123")}})
	require.NoError(t, err)
	assert.Equal(t, "abc123", rec.Title)
	assert.False(t, d.Session.Editing("r1"))

	require.NoError(t, d.BeginEdit(BeginEdit{ID: "r1"}))
	d.CancelEdit(CancelEdit{ID: "r1"})
	assert.False(t, d.Session.Editing("r1"))

	assert.ErrorIs(t, d.BeginEdit(BeginEdit{ID: "nope"}), store.ErrNotFound)
	_, err = d.Commit(CommitEdit{ID: "nope"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCommitWhileViewingIsLogged(t *testing.T) {
	d, buf := newDispatcher(t, 1)
	_, err := d.Commit(CommitEdit{ID: "r1", Patch: model.Patch{Title: model.Str("abc123")}})
	assert.ErrorIs(t, err, edit.ErrNotEditing)
	assert.Equal(t, "Activity 0", title(t, d, "r1"))
	assert.Contains(t, buf.String(), "not being edited")
}

func TestCommitReadsColumnRules(t *testing.T) {
	saved := Columns[0].Rules
	t.Cleanup(func() { Columns[0].Rules = saved })
	Columns[0].Rules = []validate.Rule{{
		Name:    "no-abc",
		Message: "Must not start with abc",
		Check:   func(v string) bool { return len(v) < 3 || v[:3] != "abc" },
	}}

	d, _ := newDispatcher(t, 1)
	require.NoError(t, d.BeginEdit(BeginEdit{ID: "r1"}))
	_, err := d.Commit(CommitEdit{ID: "r1", Patch: model.Patch{Title: model.Str("abc123")}})
	var ve *validate.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"no-abc"}, ve.Rules())
	assert.Equal(t, "Activity 0", title(t, d, "r1"))

	// "ab" breaks every default title rule but passes the swapped set.
	rec, err := d.Commit(CommitEdit{ID: "r1", Patch: model.Patch{Title: model.Str("ab")}})
	require.NoError(t, err)
	assert.Equal(t, "ab", rec.Title)
}

func TestValidate(t *testing.T) {
	err := Validate(model.Record{Title: "abc"})
	var ve *validate.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)
	assert.Equal(t, []string{"digit", "min"}, ve.Rules())

	assert.NoError(t, Validate(model.Record{Title: "abc123", State: model.StateOpen}))
}

func title(t *testing.T, d *Dispatcher, id string) string {
	t.Helper()
	r, err := d.Store.Get(id)
	require.NoError(t, err)
	return r.Title
}

func TestColumns(t *testing.T) {
	require.Len(t, Columns, 4)
	assert.Equal(t, FieldTitle, Columns[0].Field)
	assert.NotEmpty(t, Columns[0].Rules)
	assert.False(t, Columns[3].Editable)

	w := Widths(100)
	assert.Equal(t, []int{30, 14, 40, 16}, w)

	r := model.Record{Title: "t", Description: "d", State: model.StateClosed}
	assert.Equal(t, "t", Value(r, FieldTitle))
	assert.Equal(t, "Resolved", Value(r, FieldState))
	assert.Equal(t, "d", Value(r, FieldDescription))
	assert.Empty(t, Value(r, FieldActions))
	assert.Equal(t, "closed", Raw(r, FieldState))
	assert.Equal(t, "t", Raw(r, FieldTitle))

	var fields []Field
	for _, c := range Editable() {
		fields = append(fields, c.Field)
	}
	assert.Equal(t, []Field{FieldTitle, FieldState, FieldDescription}, fields)
	assert.Equal(t, model.States, Editable()[1].Options)

	c, ok := Lookup(FieldTitle)
	require.True(t, ok)
	assert.Equal(t, "Activity", c.Label)
	_, ok = Lookup("owner")
	assert.False(t, ok)
}
