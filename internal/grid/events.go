package grid

import "github.com/idilsaglam/grid/internal/model"

// Each event is one user intent. They are plain values so the TUI can
// carry them as tea messages.

// AddRow appends an empty record.
type AddRow struct{}

// DeleteRow removes a record.
type DeleteRow struct{ ID string }

// DragEnd is reported when a dragged row is released. Over is the id of the
// row under the pointer, or "" when the drop landed nowhere.
type DragEnd struct {
	Dragged string
	Over    string
}

// BeginEdit opens a record for editing.
type BeginEdit struct{ ID string }

// CancelEdit leaves editing without saving.
type CancelEdit struct{ ID string }

// CommitEdit asks to save the given fields.
type CommitEdit struct {
	ID    string
	Patch model.Patch
}
