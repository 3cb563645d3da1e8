package grid

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/grid/internal/edit"
	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/store"
)

// Dispatcher applies events to the store it was built with. All calls
// come from one event loop.
type Dispatcher struct {
	Store   *store.Store
	Session *edit.Session
	Log     *log.Logger
}

func NewDispatcher(s *store.Store, l *log.Logger) *Dispatcher {
	return &Dispatcher{Store: s, Session: edit.NewSession(s, edit.ValidatorFunc(Validate)), Log: l}
}

// Add handles AddRow. The new record starts out being edited.
func (d *Dispatcher) Add(AddRow) model.Record {
	r := d.Store.Insert()
	if err := d.Session.BeginEdit(r.ID); err != nil {
		d.defect(err)
	}
	d.Log.Info("row added", "id", r.ID)
	return r
}

// Delete handles DeleteRow.
func (d *Dispatcher) Delete(ev DeleteRow) error {
	d.Session.EndEdit(ev.ID)
	if err := d.Store.Delete(ev.ID); err != nil {
		return d.defect(err)
	}
	d.Log.Info("row deleted", "id", ev.ID)
	return nil
}

// DragEnd handles a drop. It reorders only when the row was dropped on a
// different row; a row dragged downward lands after the target so that
// the result matches moving it to the target's index.
func (d *Dispatcher) DragEnd(ev DragEnd) (moved bool, err error) {
	if ev.Over == "" || ev.Over == ev.Dragged {
		return false, nil
	}
	from, to := d.Store.Index(ev.Dragged), d.Store.Index(ev.Over)
	if from >= 0 && to >= 0 && from < to {
		_, err = d.Store.MoveAfter(ev.Dragged, ev.Over)
	} else {
		_, err = d.Store.MoveBefore(ev.Dragged, ev.Over)
	}
	if err != nil {
		return false, d.defect(err)
	}
	d.Log.Info("row moved", "id", ev.Dragged, "over", ev.Over)
	return true, nil
}

// BeginEdit handles BeginEdit.
func (d *Dispatcher) BeginEdit(ev BeginEdit) error {
	if err := d.Session.BeginEdit(ev.ID); err != nil {
		return d.defect(err)
	}
	return nil
}

// CancelEdit handles CancelEdit.
func (d *Dispatcher) CancelEdit(ev CancelEdit) {
	d.Session.EndEdit(ev.ID)
}

// Commit handles CommitEdit. Validation failures are returned as they are
// and logged at debug level; missing records and commits of records not
// being edited are defects.
func (d *Dispatcher) Commit(ev CommitEdit) (model.Record, error) {
	rec, err := d.Session.Commit(ev.ID, ev.Patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, edit.ErrNotEditing) {
			return rec, d.defect(err)
		}
		d.Log.Debug("commit rejected", "id", ev.ID, "err", err)
		return rec, err
	}
	d.Log.Info("row saved", "id", rec.ID)
	return rec, nil
}

func (d *Dispatcher) defect(err error) error {
	msg := "event referenced a missing record"
	if errors.Is(err, edit.ErrNotEditing) {
		msg = "event referenced a record that is not being edited"
	}
	d.Log.Error(msg, "err", err)
	return err
}
