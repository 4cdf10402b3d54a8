package fsm

import "github.com/atomicstack/navmenu/internal/logging/events"

// RejectHandler receives every illegal transition request.
type RejectHandler func(err *IllegalTransitionError)

// Option configures a Machine during construction.
type Option func(*options)

type options struct {
	reject RejectHandler
}

// WithRejectHandler replaces the default diagnostic for illegal requests.
// A nil handler silences rejections entirely.
func WithRejectHandler(h RejectHandler) Option {
	return func(o *options) {
		o.reject = h
	}
}

func defaultOptions() options {
	return options{
		reject: func(err *IllegalTransitionError) {
			events.Machine.Illegal(err.From, err.To)
		},
	}
}
