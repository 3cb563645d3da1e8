package store

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/grid/internal/model"
)

// Store holds the ordered record list and the set of ids open for editing.
// It is owned by a single event loop and does no locking.
type Store struct {
	records []model.Record
	editing map[string]struct{}
	newID   func() string
	log     *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the uuid generator (tests use it for stable ids).
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithLogger attaches a logger for mutation traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		editing: map[string]struct{}{},
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	return s
}

// Insert appends a record with a fresh id and empty fields.
func (s *Store) Insert() model.Record {
	id := s.newID()
	for s.Index(id) >= 0 {
		id = s.newID()
	}
	r := model.Record{ID: id}
	s.records = append(s.records, r)
	s.log.Debug("insert", "id", id, "len", len(s.records))
	return r
}

// Update merges p into the record in place.
func (s *Store) Update(id string, p model.Patch) (model.Record, error) {
	i := s.Index(id)
	if i < 0 {
		return model.Record{}, notFound("update", id)
	}
	s.records[i] = p.Apply(s.records[i])
	s.log.Debug("update", "id", id, "index", i)
	return s.records[i], nil
}

// Delete removes the record and drops it from the edit set.
func (s *Store) Delete(id string) error {
	i := s.Index(id)
	if i < 0 {
		return notFound("delete", id)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.editing, id)
	s.log.Debug("delete", "id", id, "len", len(s.records))
	return nil
}

// All returns a copy of the records in display order.
func (s *Store) All() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.Record, error) {
	i := s.Index(id)
	if i < 0 {
		return model.Record{}, notFound("get", id)
	}
	return s.records[i], nil
}

// Index is the position of id, or -1.
func (s *Store) Index(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Len() int { return len(s.records) }

// OpenEdit adds id to the edit set. The id must exist.
func (s *Store) OpenEdit(id string) error {
	if s.Index(id) < 0 {
		return notFound("edit", id)
	}
	s.editing[id] = struct{}{}
	return nil
}

// CloseEdit removes id from the edit set; unknown ids are ignored.
func (s *Store) CloseEdit(id string) {
	delete(s.editing, id)
}

func (s *Store) IsEditing(id string) bool {
	_, ok := s.editing[id]
	return ok
}

// EditKeys lists the ids being edited, in record order.
func (s *Store) EditKeys() []string {
	keys := make([]string, 0, len(s.editing))
	for _, r := range s.records {
		if _, ok := s.editing[r.ID]; ok {
			keys = append(keys, r.ID)
		}
	}
	return keys
}
