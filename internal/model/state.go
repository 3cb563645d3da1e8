package model

import "fmt"

// State is the optional status column of a record.
type State string

const (
	StateNone   State = ""
	StateAll    State = "all"
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// States lists the selectable values in display order.
var States = []State{StateAll, StateOpen, StateClosed}

// Label is the text shown in the state column.
func (s State) Label() string {
	switch s {
	case StateAll:
		return "All"
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Resolved"
	}
	return ""
}

// ParseState accepts the JSON value of a state ("" for unset).
func ParseState(v string) (State, error) {
	switch State(v) {
	case StateNone, StateAll, StateOpen, StateClosed:
		return State(v), nil
	}
	return StateNone, fmt.Errorf("unknown state %q", v)
}

func (s *State) UnmarshalText(b []byte) error {
	st, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
