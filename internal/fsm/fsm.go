package fsm

import "fmt"

// Table maps every state to the states directly reachable from it. Every
// state in the universe must appear as a key, even when it has no successors.
type Table[S comparable] map[S][]S

// Hook is invoked after a successful transition, once current already holds next.
type Hook[S comparable] func(next, previous S)

// Machine is a table-driven state machine over a closed state universe.
type Machine[S comparable] struct {
	current    S
	successors map[S][]S
	legal      map[S]map[S]struct{}
	onChange   Hook[S]
	reject     RejectHandler
}

// New builds a Machine starting in initial. The table is copied, so later
// changes to it have no effect on the machine.
func New[S comparable](initial S, table Table[S], onTransition Hook[S], opts ...Option) (*Machine[S], error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	if _, ok := table[initial]; !ok {
		return nil, &UndeclaredStateError{State: name(initial), Role: "initial"}
	}
	successors := make(map[S][]S, len(table))
	legal := make(map[S]map[S]struct{}, len(table))
	for from, targets := range table {
		set := make(map[S]struct{}, len(targets))
		ordered := make([]S, 0, len(targets))
		for _, to := range targets {
			if _, ok := table[to]; !ok {
				return nil, &UndeclaredStateError{State: name(to), Role: "target of " + name(from)}
			}
			if _, dup := set[to]; dup {
				continue
			}
			set[to] = struct{}{}
			ordered = append(ordered, to)
		}
		legal[from] = set
		successors[from] = ordered
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Machine[S]{
		current:    initial,
		successors: successors,
		legal:      legal,
		onChange:   onTransition,
		reject:     o.reject,
	}, nil
}

// MustNew is like New but panics on an invalid table.
func MustNew[S comparable](initial S, table Table[S], onTransition Hook[S], opts ...Option) *Machine[S] {
	m, err := New(initial, table, onTransition, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// State returns the current state.
func (m *Machine[S]) State() S {
	return m.current
}

// CanTransition reports whether next is directly reachable from the current state.
func (m *Machine[S]) CanTransition(next S) bool {
	_, ok := m.legal[m.current][next]
	return ok
}

// Successors lists the states reachable from the current state, in
// declaration order.
func (m *Machine[S]) Successors() []S {
	out := make([]S, len(m.successors[m.current]))
	copy(out, m.successors[m.current])
	return out
}

// Transition moves to next when the table allows it and reports whether it
// did. Illegal requests go to the reject handler and return false.
func (m *Machine[S]) Transition(next S) bool {
	if !m.CanTransition(next) {
		if m.reject != nil {
			m.reject(&IllegalTransitionError{From: name(m.current), To: name(next)})
		}
		return false
	}
	previous := m.current
	m.current = next
	if m.onChange != nil {
		m.onChange(next, previous)
	}
	return true
}

func name[S comparable](s S) string {
	return fmt.Sprint(s)
}
