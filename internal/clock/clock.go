// Package clock defines the one-shot timer capability used by the menu
// controller and a manually advanced implementation of it.
package clock

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback. The zero value never names a timer.
type TimerID uint64

// Manual is a virtual clock. Time only moves when Advance is called, and due
// callbacks run synchronously on the caller's goroutine, in due order.
type Manual struct {
	now    time.Time
	nextID TimerID
	timers []manualTimer
}

type manualTimer struct {
	id  TimerID
	due time.Time
	fn  func()
}

// NewManual returns a clock reading start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (c *Manual) Now() time.Time {
	return c.now
}

// After schedules fn to run once d has elapsed. Negative durations are
// treated as zero; the callback still waits for the next Advance.
func (c *Manual) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	c.nextID++
	c.timers = append(c.timers, manualTimer{id: c.nextID, due: c.now.Add(d), fn: fn})
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].due.Before(c.timers[j].due)
	})
	return c.nextID
}

// Cancel discards a pending timer. Unknown or already fired ids are ignored.
func (c *Manual) Cancel(id TimerID) {
	for i, t := range c.timers {
		if t.id == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Pending reports how many timers are waiting to fire.
func (c *Manual) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer that falls due on
// the way, including timers scheduled by callbacks within the window. It
// returns the number of callbacks run.
func (c *Manual) Advance(d time.Duration) int {
	target := c.now.Add(d)
	fired := 0
	for len(c.timers) > 0 && !c.timers[0].due.After(target) {
		t := c.timers[0]
		c.timers = c.timers[1:]
		c.now = t.due
		fired++
		if t.fn != nil {
			t.fn()
		}
	}
	c.now = target
	return fired
}
