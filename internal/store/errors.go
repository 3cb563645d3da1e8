package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("record not found")

// NotFoundError reports an operation on an id the store does not hold.
// Under correct event routing it never happens, so callers treat it as a bug.
type NotFoundError struct {
	Op string
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(op, id string) error { return &NotFoundError{Op: op, ID: id} }
