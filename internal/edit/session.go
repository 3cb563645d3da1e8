// Package edit tracks inline edits and commits them to the store.
package edit

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/grid/internal/model"
	"github.com/idilsaglam/grid/internal/store"
)

// ErrNotEditing is returned when a record that is only being viewed is
// committed or given a draft.
var ErrNotEditing = errors.New("record is not being edited")

// Validator checks a record before it is saved. A failure should be a
// *validate.Error.
type Validator interface {
	Validate(r model.Record) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(r model.Record) error

func (f ValidatorFunc) Validate(r model.Record) error { return f(r) }

// Session is the edit controller for one store. A record is either being
// viewed or being edited; the store's edit set is the source of truth.
type Session struct {
	store     *store.Store
	validator Validator
	drafts    map[string]model.Patch
}

// NewSession returns a controller committing through v; a nil v accepts
// every record.
func NewSession(s *store.Store, v Validator) *Session {
	if v == nil {
		v = ValidatorFunc(func(model.Record) error { return nil })
	}
	return &Session{store: s, validator: v, drafts: map[string]model.Patch{}}
}

// BeginEdit moves id into the editing state.
func (s *Session) BeginEdit(id string) error {
	return s.store.OpenEdit(id)
}

// EndEdit leaves editing without committing and drops any draft.
// Unknown ids are ignored.
func (s *Session) EndEdit(id string) {
	delete(s.drafts, id)
	s.store.CloseEdit(id)
}

func (s *Session) Editing(id string) bool { return s.store.IsEditing(id) }

// SetDraft stores unsaved field values for a record being edited.
func (s *Session) SetDraft(id string, p model.Patch) error {
	if !s.store.IsEditing(id) {
		return fmt.Errorf("draft for %q: %w", id, ErrNotEditing)
	}
	s.drafts[id] = p
	return nil
}

// Draft returns the unsaved values for id, if any.
func (s *Session) Draft(id string) (model.Patch, bool) {
	p, ok := s.drafts[id]
	return p, ok
}

// Commit validates the merged record and, when every rule passes, writes
// the fields as one update and leaves editing. On a validation failure the
// record and the edit set are left untouched and the validator's error is
// returned. Only records being edited can be committed.
func (s *Session) Commit(id string, p model.Patch) (model.Record, error) {
	cur, err := s.store.Get(id)
	if err != nil {
		return model.Record{}, err
	}
	if !s.store.IsEditing(id) {
		return cur, fmt.Errorf("commit %q: %w", id, ErrNotEditing)
	}
	if err := s.validator.Validate(p.Apply(cur)); err != nil {
		return cur, err
	}
	rec, err := s.store.Update(id, p)
	if err != nil {
		return model.Record{}, err
	}
	s.EndEdit(id)
	return rec, nil
}
