package store

import (
	"fmt"

	"github.com/idilsaglam/grid/internal/model"
)

const seedDescription = "This activity is great fun"

// Seed appends n demo records. When editing is set every new record is
// also opened for editing, which is how the grid starts up.
func (s *Store) Seed(n int, editing bool) []model.Record {
	out := make([]model.Record, 0, n)
	for i := 0; i < n; i++ {
		r := s.Insert()
		r, _ = s.Update(r.ID, model.Patch{
			Title:       model.Str(fmt.Sprintf("Activity %d", i)),
			Description: model.Str(seedDescription),
		})
		if editing {
			_ = s.OpenEdit(r.ID)
		}
		out = append(out, r)
	}
	return out
}
