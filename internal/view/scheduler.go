package view

import "time"

// Delays used by the modal.
const (
	// ShowDelay defers listening for outside clicks so the click that opened
	// the form is not taken as one.
	ShowDelay = 100 * time.Millisecond
	// ResetDelay defers clearing the form until it has faded out.
	ResetDelay = 300 * time.Millisecond
)

// Scheduler runs fn once after d on the caller's event loop.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or
	// was already stopped.
	Stop() bool
}
