package validate

import "strings"

// Error lists every rule a field value broke.
type Error struct {
	Field    string
	Failures []Result
}

func (e *Error) Error() string {
	return e.Field + ": " + strings.Join(e.Messages(), "; ")
}

// Messages returns the failure messages in rule order.
func (e *Error) Messages() []string {
	out := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f.Message
	}
	return out
}

// Rules returns the failed rule names in rule order.
func (e *Error) Rules() []string {
	out := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f.Rule
	}
	return out
}

// Join folds per-field errors into one, in the order given. Nil entries
// are skipped; with nothing left Join returns nil.
func Join(errs ...*Error) error {
	var (
		fields []string
		out    []Result
	)
	for _, e := range errs {
		if e == nil {
			continue
		}
		fields = append(fields, e.Field)
		out = append(out, e.Failures...)
	}
	if len(fields) == 0 {
		return nil
	}
	return &Error{Field: strings.Join(fields, ", "), Failures: out}
}
