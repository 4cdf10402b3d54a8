package events

import (
	"time"

	"github.com/atomicstack/navmenu/internal/logging"
)

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Event(name, state string) {
	logging.Trace("nav.event", map[string]interface{}{"event": name, "state": state})
}

// Ignored is written as a warning whether or not tracing is enabled.
func (NavTracer) Ignored(name, state string) {
	logging.Warn("ignored event", "event", name, "state", state)
	logging.Trace("nav.ignored", map[string]interface{}{"event": name, "state": state})
}

func (NavTracer) Render(state string, visual, expanded, locked, listening bool) {
	logging.Trace("nav.render", map[string]interface{}{
		"state":     state,
		"visual":    visual,
		"expanded":  expanded,
		"locked":    locked,
		"listening": listening,
	})
}

func (NavTracer) TimerScheduled(id uint64, target string, after time.Duration) {
	logging.Trace("nav.timer.schedule", map[string]interface{}{"id": id, "target": target, "after": after.String()})
}

func (NavTracer) TimerCancelled(id uint64) {
	logging.Trace("nav.timer.cancel", map[string]interface{}{"id": id})
}

func (NavTracer) TimerStale(id, pending uint64) {
	logging.Trace("nav.timer.stale", map[string]interface{}{"id": id, "pending": pending})
}
