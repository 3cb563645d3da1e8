package model

// Record is one row of the grid.
// ID is assigned once by the store and never changes.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	State       State  `json:"state,omitempty"`
}

// Patch carries the fields of a partial update. Nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	State       *State
}

// Apply merges p into r and returns the result.
func (p Patch) Apply(r Record) Record {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.State != nil {
		r.State = *p.State
	}
	return r
}

// Empty reports whether the patch touches no field.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.State == nil
}

// Str is a small helper for building patches.
func Str(s string) *string { return &s }
