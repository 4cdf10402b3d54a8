package nav

import (
	"fmt"

	"github.com/atomicstack/navmenu/internal/fsm"
)

// State is the menu lifecycle state.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

var stateNames = [...]string{
	Closed:  "closed",
	Opening: "opening",
	Open:    "open",
	Closing: "closing",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Transitions returns the legal transition table: a strict ring with a
// single outgoing edge per state.
func Transitions() fsm.Table[State] {
	return fsm.Table[State]{
		Closed:  {Opening},
		Opening: {Open},
		Open:    {Closing},
		Closing: {Closed},
	}
}

// IsOpenSemantic reports whether the menu counts as expanded for
// accessibility purposes. It turns true as soon as opening begins.
func (s State) IsOpenSemantic() bool {
	return s == Open || s == Opening
}

// IsVisuallyOpen reports whether the menu is drawn. It stays true through
// the closing animation.
func (s State) IsVisuallyOpen() bool {
	return s != Closed
}

// IsTransient reports whether the state advances on its own after the dwell.
func (s State) IsTransient() bool {
	_, ok := s.autoAdvance()
	return ok
}

func (s State) autoAdvance() (State, bool) {
	switch s {
	case Opening:
		return Open, true
	case Closing:
		return Closed, true
	}
	return s, false
}
