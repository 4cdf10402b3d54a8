package fsm

import (
	"errors"
	"fmt"
)

var ErrEmptyTable = errors.New("fsm: transition table declares no states")

// IllegalTransitionError describes a rejected transition request.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: %s -> %s", e.From, e.To)
}

// UndeclaredStateError reports a state referenced during construction that is
// not a key of the transition table.
type UndeclaredStateError struct {
	State string
	Role  string // "initial" or "target of <state>"
}

func (e *UndeclaredStateError) Error() string {
	return fmt.Sprintf("fsm: undeclared state %q used as %s", e.State, e.Role)
}

func IsIllegalTransition(err error) bool {
	var e *IllegalTransitionError
	return errors.As(err, &e)
}

func IsUndeclaredState(err error) bool {
	var e *UndeclaredStateError
	return errors.As(err, &e)
}
