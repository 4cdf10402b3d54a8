package nav

import (
	"time"

	"github.com/atomicstack/navmenu/internal/clock"
	"github.com/atomicstack/navmenu/internal/fsm"
	"github.com/atomicstack/navmenu/internal/logging/events"
)

// DefaultDwell is how long the menu stays in a transient state.
const DefaultDwell = 300 * time.Millisecond

// IgnoreHandler observes events that did not map to a transition request.
type IgnoreHandler func(evt Event, state State)

type Option func(*Controller)

// WithDwell overrides the transient-state dwell. Non-positive values are ignored.
func WithDwell(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.dwell = d
		}
	}
}

// WithRejectHandler forwards illegal transition requests to h instead of the
// engine's default diagnostic.
func WithRejectHandler(h fsm.RejectHandler) Option {
	return func(c *Controller) {
		c.engineOpts = append(c.engineOpts, fsm.WithRejectHandler(h))
	}
}

// WithIgnoreHandler replaces the diagnostic emitted for ignored events.
func WithIgnoreHandler(h IgnoreHandler) Option {
	return func(c *Controller) {
		c.ignored = h
	}
}

// Controller owns the menu state machine, the single pending timer, and the
// escape listener status.
type Controller struct {
	machine    *fsm.Machine[State]
	surface    Surface
	sched      Scheduler
	dwell      time.Duration
	pending    clock.TimerID
	listening  bool
	ignored    IgnoreHandler
	engineOpts []fsm.Option
}

// NewController builds a controller in the Closed state and renders it once.
func NewController(surface Surface, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		sched:   sched,
		dwell:   DefaultDwell,
		ignored: func(evt Event, state State) {
			events.Nav.Ignored(evt.Name(), state.String())
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.machine = fsm.MustNew(Closed, Transitions(), c.render, c.engineOpts...)
	c.render(Closed, Closed)
	return c
}

// State returns the current menu state.
func (c *Controller) State() State {
	return c.machine.State()
}

// Pending returns the outstanding timer, or zero when none is scheduled.
func (c *Controller) Pending() clock.TimerID {
	return c.pending
}

// Listening reports whether the escape listener is installed.
func (c *Controller) Listening() bool {
	return c.listening
}

// Dwell returns the transient-state duration.
func (c *Controller) Dwell() time.Duration {
	return c.dwell
}

// Dispatch reacts to evt and reports whether it produced a transition.
func (c *Controller) Dispatch(evt Event) bool {
	state := c.machine.State()
	events.Nav.Event(evt.Name(), state.String())
	switch e := evt.(type) {
	case ToggleActivated:
		switch state {
		case Closed:
			return c.machine.Transition(Opening)
		case Open:
			return c.machine.Transition(Closing)
		}
	case LinkActivated:
		if state == Open {
			return c.machine.Transition(Closing)
		}
	case EscapePressed:
		if c.listening {
			ok := c.machine.Transition(Closing)
			c.surface.FocusToggle()
			return ok
		}
	case TimerFired:
		if e.ID == 0 || e.ID != c.pending {
			events.Nav.TimerStale(uint64(e.ID), uint64(c.pending))
			return false
		}
		// the expiry may have been delivered ahead of the scheduler
		c.cancelPending()
		return c.machine.Transition(e.Target)
	}
	if c.ignored != nil {
		c.ignored(evt, state)
	}
	return false
}

// render is the transition hook. The pending timer is always cancelled
// first so two animation timelines can never overlap.
func (c *Controller) render(next, _ State) {
	c.cancelPending()

	p := Present(next)
	c.surface.SetVisuallyOpen(p.VisuallyOpen)
	c.surface.SetExpanded(p.Expanded)
	c.surface.SetScrollLocked(p.ScrollLocked)
	c.listening = p.EscapeListener
	c.surface.SetEscapeListener(p.EscapeListener)
	events.Nav.Render(next.String(), p.VisuallyOpen, p.Expanded, p.ScrollLocked, p.EscapeListener)

	if target, ok := next.autoAdvance(); ok {
		c.schedule(target)
	}
}

func (c *Controller) schedule(target State) {
	var id clock.TimerID
	id = c.sched.After(c.dwell, func() {
		c.Dispatch(TimerFired{ID: id, Target: target})
	})
	c.pending = id
	events.Nav.TimerScheduled(uint64(id), target.String(), c.dwell)
}

func (c *Controller) cancelPending() {
	if c.pending == 0 {
		return
	}
	c.sched.Cancel(c.pending)
	events.Nav.TimerCancelled(uint64(c.pending))
	c.pending = 0
}
