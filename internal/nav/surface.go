package nav

import (
	"time"

	"github.com/atomicstack/navmenu/internal/clock"
)

// Presentation is the full set of flags the controller pushes to the
// presentation layer after each transition.
type Presentation struct {
	VisuallyOpen   bool
	Expanded       bool
	ScrollLocked   bool
	EscapeListener bool
}

// Present derives the presentation for s. It is a pure function of state.
func Present(s State) Presentation {
	return Presentation{
		VisuallyOpen:   s.IsVisuallyOpen(),
		Expanded:       s.IsOpenSemantic(),
		ScrollLocked:   s != Closed,
		EscapeListener: s == Open,
	}
}

// Surface receives presentation updates. Each setter must be idempotent:
// the controller re-applies every flag on every render.
type Surface interface {
	SetVisuallyOpen(open bool)
	SetExpanded(expanded bool)
	SetScrollLocked(locked bool)
	SetEscapeListener(installed bool)
	FocusToggle()
}

// Scheduler runs a callback once after a delay. Callbacks must be delivered
// on the controller's goroutine and never from inside After itself.
type Scheduler interface {
	After(d time.Duration, fn func()) clock.TimerID
	Cancel(id clock.TimerID)
}
