// Package fsm provides a small, generic finite-state machine engine.
//
// A Machine holds exactly one current state and a transition table declaring,
// for every state, the states directly reachable from it. Transition validates
// a request against the table before mutating anything: an illegal request
// leaves the state untouched, does not invoke the transition hook, and is
// reported to the reject handler as an *IllegalTransitionError instead of
// being returned to the caller.
//
// The engine performs no I/O, scheduling or timing of its own. Callers attach
// side effects through the hook passed to New, which runs synchronously after
// the state has been updated.
//
// The state universe is closed: New rejects tables that reference a state
// which is not itself declared, and an initial state outside the table.
//
// A Machine is not safe for concurrent use. It is meant to be owned by a
// single event loop, which serialises every transition.
package fsm
