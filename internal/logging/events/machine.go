package events

import "github.com/atomicstack/navmenu/internal/logging"

// MachineTracer reports engine-level diagnostics.
type MachineTracer struct{}

var Machine = MachineTracer{}

// Illegal is emitted for every rejected transition request. It is always
// written as a warning, and additionally traced when tracing is on.
func (MachineTracer) Illegal(from, to string) {
	logging.Warn("illegal transition", "from", from, "to", to)
	logging.Trace("fsm.illegal", map[string]interface{}{"from": from, "to": to})
}
