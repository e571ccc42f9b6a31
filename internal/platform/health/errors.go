package health

import "errors"

var (
	// ErrAlreadyStarted is returned by Start when the refresh loop is running
	// or has already run.
	ErrAlreadyStarted = errors.New("health: engine already started")

	// ErrNotStarted is returned by Refresh when the refresh loop was never
	// started, so no refresh would ever complete.
	ErrNotStarted = errors.New("health: engine not started")

	// ErrStopped is returned when waiting on a stopped engine or a closed
	// subscription.
	ErrStopped = errors.New("health: engine stopped")
)
