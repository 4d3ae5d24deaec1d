package poll

import "errors"

var (
	// ErrAlreadyStarted is returned by Start when called more than once.
	ErrAlreadyStarted = errors.New("poll: poller already started")
	// ErrClosed is returned by Start when the poller is shutting down or already stopped.
	ErrClosed = errors.New("poll: poller closed")
)
