package nav

import "github.com/atomicstack/navmenu/internal/clock"

// Event is the closed set of stimuli the controller reacts to.
type Event interface {
	Name() string
	isEvent()
}

// ToggleActivated is a press of the menu toggle control.
type ToggleActivated struct{}

// LinkActivated is the activation of a link inside the menu.
type LinkActivated struct {
	Index int
}

// EscapePressed is delivered by the global key listener.
type EscapePressed struct{}

// TimerFired is the expiry of a scheduled auto-advance.
type TimerFired struct {
	ID     clock.TimerID
	Target State
}

func (ToggleActivated) Name() string { return "toggle" }
func (LinkActivated) Name() string   { return "link" }
func (EscapePressed) Name() string   { return "escape" }
func (TimerFired) Name() string      { return "timer" }

func (ToggleActivated) isEvent() {}
func (LinkActivated) isEvent()   {}
func (EscapePressed) isEvent()   {}
func (TimerFired) isEvent()      {}
