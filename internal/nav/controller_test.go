package nav

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/navmenu/internal/clock"
	"github.com/atomicstack/navmenu/internal/fsm"
	"github.com/atomicstack/navmenu/internal/logging"
)

// recordingSurface captures the flags applied by the controller and the
// listener status seen by each render.
type recordingSurface struct {
	Presentation
	focusCalls int
	renders    []Presentation
}

func (s *recordingSurface) SetVisuallyOpen(open bool)   { s.VisuallyOpen = open }
func (s *recordingSurface) SetExpanded(expanded bool)   { s.Expanded = expanded }
func (s *recordingSurface) SetScrollLocked(locked bool) { s.ScrollLocked = locked }
func (s *recordingSurface) FocusToggle()                { s.focusCalls++ }
func (s *recordingSurface) SetEscapeListener(installed bool) {
	s.EscapeListener = installed
	s.renders = append(s.renders, s.Presentation)
}

// countingScheduler wraps the manual clock and counts fired callbacks.
type countingScheduler struct {
	*clock.Manual
	fired int
}

func (s *countingScheduler) After(d time.Duration, fn func()) clock.TimerID {
	return s.Manual.After(d, func() {
		s.fired++
		fn()
	})
}

type fixture struct {
	ctrl     *Controller
	surface  *recordingSurface
	clock    *countingScheduler
	rejected []*fsm.IllegalTransitionError
	ignored  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		surface: &recordingSurface{},
		clock:   &countingScheduler{Manual: clock.NewManual(time.Unix(0, 0))},
	}
	f.ctrl = NewController(f.surface, f.clock,
		WithRejectHandler(func(err *fsm.IllegalTransitionError) {
			f.rejected = append(f.rejected, err)
		}),
		WithIgnoreHandler(func(evt Event, state State) {
			f.ignored = append(f.ignored, evt.Name()+"@"+state.String())
		}),
	)
	return f
}

func (f *fixture) elapse() {
	f.clock.Advance(f.ctrl.Dwell())
}

func TestInitialRender(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, Closed, f.ctrl.State())
	assert.Equal(t, Presentation{}, f.surface.Presentation)
	require.Len(t, f.surface.renders, 1, "controller renders once at construction")
	assert.Zero(t, f.ctrl.Pending())
	assert.Equal(t, 0, f.clock.Pending())
}

func TestToggleOpensThroughOpening(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.ctrl.Dispatch(ToggleActivated{}))
	assert.Equal(t, Opening, f.ctrl.State())
	assert.Equal(t, Presentation{VisuallyOpen: true, Expanded: true, ScrollLocked: true}, f.surface.Presentation)
	assert.NotZero(t, f.ctrl.Pending())

	f.clock.Advance(f.ctrl.Dwell() - time.Millisecond)
	assert.Equal(t, Opening, f.ctrl.State(), "dwell not yet elapsed")

	f.clock.Advance(time.Millisecond)
	assert.Equal(t, Open, f.ctrl.State())
	assert.True(t, f.surface.EscapeListener)
	assert.True(t, f.ctrl.Listening())
	assert.Zero(t, f.ctrl.Pending())
}

func TestEscapeClosesAndRestoresFocus(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	f.elapse()
	require.Equal(t, Open, f.ctrl.State())

	require.True(t, f.ctrl.Dispatch(EscapePressed{}))
	assert.Equal(t, Closing, f.ctrl.State())
	assert.Equal(t, 1, f.surface.focusCalls)
	assert.False(t, f.surface.EscapeListener)
	assert.True(t, f.surface.VisuallyOpen, "menu stays visible while closing")
	assert.False(t, f.surface.Expanded)

	f.elapse()
	assert.Equal(t, Closed, f.ctrl.State())
	assert.Equal(t, Presentation{}, f.surface.Presentation)
}

func TestEscapeIgnoredWithoutListener(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.ctrl.Dispatch(EscapePressed{}))
	f.ctrl.Dispatch(ToggleActivated{})
	assert.False(t, f.ctrl.Dispatch(EscapePressed{}))
	assert.Equal(t, Opening, f.ctrl.State())
	assert.Equal(t, 0, f.surface.focusCalls)
	assert.Equal(t, []string{"escape@closed", "escape@opening"}, f.ignored)
}

func TestToggleWhileOpeningIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	pending := f.ctrl.Pending()

	assert.False(t, f.ctrl.Dispatch(ToggleActivated{}))
	assert.Equal(t, Opening, f.ctrl.State())
	assert.Equal(t, pending, f.ctrl.Pending(), "in-flight timer untouched")
	assert.Equal(t, []string{"toggle@opening"}, f.ignored)
	assert.Empty(t, f.rejected)
}

func TestIgnoredToggleWritesDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	logging.SetTraceEnabled(false)
	t.Cleanup(func() { logging.SetOutput(nil) })

	ctrl := NewController(&recordingSurface{}, clock.NewManual(time.Unix(0, 0)))
	require.True(t, ctrl.Dispatch(ToggleActivated{}))
	require.Empty(t, buf.String())

	assert.False(t, ctrl.Dispatch(ToggleActivated{}))
	assert.Equal(t, Opening, ctrl.State())
	assert.Contains(t, buf.String(), `"msg":"ignored event"`)
	assert.Contains(t, buf.String(), `"state":"opening"`)
}

func TestLinkWhileClosedIsIgnored(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.ctrl.Dispatch(LinkActivated{Index: 2}))
	assert.Equal(t, Closed, f.ctrl.State())
	assert.Equal(t, []string{"link@closed"}, f.ignored)
	assert.Len(t, f.surface.renders, 1)
}

func TestLinkWhileOpenCloses(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	f.elapse()

	require.True(t, f.ctrl.Dispatch(LinkActivated{Index: 0}))
	assert.Equal(t, Closing, f.ctrl.State())
	assert.Equal(t, 0, f.surface.focusCalls, "only escape moves focus")
	f.elapse()
	assert.Equal(t, Closed, f.ctrl.State())
}

func TestListenerInstalledOnlyWhileOpen(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.ctrl.Dispatch(ToggleActivated{})
		f.elapse()
		f.ctrl.Dispatch(ToggleActivated{})
		f.elapse()
	}
	require.Len(t, f.surface.renders, 1+3*4)
	for i, p := range f.surface.renders {
		// renders cycle closed, opening, open, closing, closed, ...
		want := i%4 == 2
		assert.Equal(t, want, p.EscapeListener, "render %d", i)
	}
}

func TestTimerExclusivityUnderRapidInput(t *testing.T) {
	f := newFixture(t)
	inputs := []Event{
		ToggleActivated{}, LinkActivated{}, ToggleActivated{}, LinkActivated{},
		ToggleActivated{}, EscapePressed{}, LinkActivated{}, ToggleActivated{},
	}
	for _, evt := range inputs {
		f.ctrl.Dispatch(evt)
		assert.LessOrEqual(t, f.clock.Pending(), 1, "at most one timer outstanding")
	}
	assert.Equal(t, Opening, f.ctrl.State())

	f.elapse()
	assert.Equal(t, 1, f.clock.fired, "exactly one delayed callback fires")
	assert.Equal(t, Open, f.ctrl.State())

	f.clock.Advance(10 * f.ctrl.Dwell())
	assert.Equal(t, 1, f.clock.fired)
	assert.Equal(t, Open, f.ctrl.State())
}

func TestStaleTimerIsDiscarded(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	pending := f.ctrl.Pending()

	assert.False(t, f.ctrl.Dispatch(TimerFired{ID: pending + 100, Target: Open}))
	assert.False(t, f.ctrl.Dispatch(TimerFired{Target: Open}))
	assert.Equal(t, Opening, f.ctrl.State())
	assert.Equal(t, pending, f.ctrl.Pending())

	require.True(t, f.ctrl.Dispatch(TimerFired{ID: pending, Target: Open}))
	assert.Equal(t, Open, f.ctrl.State())
}

func TestEarlyExpiryWithdrawsScheduledTimer(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	first := f.ctrl.Pending()
	require.Equal(t, 1, f.clock.Pending())

	// deliver the expiry early by hand; the clock's copy is withdrawn so
	// only one timer is ever outstanding.
	require.True(t, f.ctrl.Dispatch(TimerFired{ID: first, Target: Open}))
	assert.Zero(t, f.clock.Pending())
	require.True(t, f.ctrl.Dispatch(ToggleActivated{}))
	second := f.ctrl.Pending()
	assert.NotEqual(t, first, second)
	assert.Equal(t, Closing, f.ctrl.State())
	assert.Equal(t, 1, f.clock.Pending())

	f.elapse()
	assert.Equal(t, 1, f.clock.fired)
	assert.Equal(t, Closed, f.ctrl.State())
	assert.Empty(t, f.rejected)
}

func TestTransientStateReplacesTimer(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Dispatch(ToggleActivated{})
	f.elapse()
	f.ctrl.Dispatch(ToggleActivated{})
	assert.Equal(t, Closing, f.ctrl.State())
	assert.Equal(t, 1, f.clock.Pending())

	f.elapse()
	assert.Equal(t, 0, f.clock.Pending())
	assert.Zero(t, f.ctrl.Pending())
}

func TestRingTotality(t *testing.T) {
	f := newFixture(t)
	seen := map[State]struct{}{}
	expected := []State{Opening, Open, Closing, Closed}
	for cycle := 0; cycle < 5; cycle++ {
		for _, want := range expected {
			if want.IsTransient() {
				require.True(t, f.ctrl.Dispatch(ToggleActivated{}))
			} else {
				f.elapse()
			}
			require.Equal(t, want, f.ctrl.State())
			seen[f.ctrl.State()] = struct{}{}
		}
	}
	assert.Len(t, seen, 4)
	assert.Empty(t, f.rejected)
}

func TestDwellOption(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(surface, clock.NewManual(time.Unix(0, 0)), WithDwell(50*time.Millisecond), WithDwell(0))
	assert.Equal(t, 50*time.Millisecond, c.Dwell())

	d := NewController(surface, clock.NewManual(time.Unix(0, 0)))
	assert.Equal(t, DefaultDwell, d.Dwell())
}
