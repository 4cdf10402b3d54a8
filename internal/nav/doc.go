// Package nav implements the navigation menu controller: a four-state ring
// (Closed, Opening, Open, Closing) driven through the fsm engine, with every
// side effect applied from the transition hook.
//
// The controller never changes state directly. Input events are matched
// against the current state to pick at most one requested transition, and
// the engine decides whether it is legal. On every successful transition the
// controller re-renders the presentation flags onto its Surface, cancels the
// pending timer, and schedules the automatic advance out of transient states.
//
// All methods must be called from the single goroutine that owns the
// controller (the UI event loop); timer callbacks are expected to be delivered
// on that same goroutine by the Scheduler.
package nav
