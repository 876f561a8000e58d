package tui

import "time"

// viewState represents the currently active view.
type viewState int

const (
	viewWorld viewState = iota
	viewAlarms
)

var viewNames = []string{"World Clock", "Alarms"}

// --- Messages ---

// tickMsg carries the instant published by the one-second timer. It is
// the sole driver of time-dependent state.
type tickMsg time.Time

type alarmAddedMsg struct {
	time string
}

type alarmRemovedMsg struct{}
