package debounce

import "time"

// Interaction event names recognised by the delay policy. They mirror the
// DOM events a form field emits while the user edits it.
const (
	EventBlur     = "blur"
	EventInput    = "input"
	EventChange   = "change"
	EventFocusout = "focusout"
	EventKeyup    = "keyup"
	EventKeydown  = "keydown"
)

// eventDelays is the fixed per-event delay policy. Keystroke events debounce
// the longest since they fire on every key; input fires once per mutation;
// commit-style events (change, blur, focusout) validate immediately.
var eventDelays = map[string]time.Duration{
	EventKeyup:    300 * time.Millisecond,
	EventKeydown:  300 * time.Millisecond,
	EventInput:    250 * time.Millisecond,
	EventChange:   0,
	EventBlur:     0,
	EventFocusout: 0,
}

// DelayFor returns the debounce delay for an interaction event name.
// Unknown events map to zero, which means pass-through.
func DelayFor(event string) time.Duration {
	return eventDelays[event]
}

// IsInteractionEvent reports whether the event name belongs to the closed
// set of supported field interaction events.
func IsInteractionEvent(event string) bool {
	_, ok := eventDelays[event]
	return ok
}

// Events returns the supported interaction event names.
func Events() []string {
	return []string{EventBlur, EventInput, EventChange, EventFocusout, EventKeyup, EventKeydown}
}
