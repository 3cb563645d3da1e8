package store

import "github.com/idilsaglam/grid/internal/model"

// MoveBefore removes movedID from the list and reinserts it immediately
// before targetID's position in the shortened list. Every other record
// keeps its relative order. Moving a record onto itself is a no-op.
func (s *Store) MoveBefore(movedID, targetID string) ([]model.Record, error) {
	return s.move("move-before", movedID, targetID, 0)
}

// MoveAfter is MoveBefore with the record landing just after targetID.
func (s *Store) MoveAfter(movedID, targetID string) ([]model.Record, error) {
	return s.move("move-after", movedID, targetID, 1)
}

func (s *Store) move(op, movedID, targetID string, offset int) ([]model.Record, error) {
	from := s.Index(movedID)
	if from < 0 {
		return nil, notFound(op, movedID)
	}
	if s.Index(targetID) < 0 {
		return nil, notFound(op, targetID)
	}
	if movedID == targetID {
		return s.All(), nil
	}

	moved := s.records[from]
	rest := make([]model.Record, 0, len(s.records))
	rest = append(rest, s.records[:from]...)
	rest = append(rest, s.records[from+1:]...)

	insertAt := -1
	for i := range rest {
		if rest[i].ID == targetID {
			insertAt = i + offset
			break
		}
	}

	out := make([]model.Record, 0, len(s.records))
	out = append(out, rest[:insertAt]...)
	out = append(out, moved)
	out = append(out, rest[insertAt:]...)
	s.records = out

	s.log.Debug(op, "id", movedID, "target", targetID, "from", from, "to", insertAt)
	return s.All(), nil
}
