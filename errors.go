package debounce

import "errors"

var (
	// ErrInvalidPolicy indicates the policy cannot be represented in its storage
	// width (MaxCount <= 1, or MaxCount does not fit two bits below the width).
	// It is returned by Init; a Debouncer with an invalid policy must not be polled.
	ErrInvalidPolicy = errors.New("debounce: invalid policy")

	// ErrAlreadyInitialized is returned by Init when the Debouncer is already
	// initialized. Deinit first to re-initialize.
	ErrAlreadyInitialized = errors.New("debounce: already initialized")

	// ErrNotInitialized is returned by Poll and Deinit before Init has completed
	// (or after Deinit). It signals a sequencing error in the caller; the safe
	// recovery is to skip the tick.
	ErrNotInitialized = errors.New("debounce: not initialized")

	// ErrViewMismatch is returned by Deinit when the supplied view is not the one
	// produced by this Debouncer's Init. The view is left untouched and remains
	// valid for its own Debouncer.
	ErrViewMismatch = errors.New("debounce: view not bound to this debouncer")

	// ErrInputRead wraps a failed read from the underlying Input. The tick that
	// observed it is skipped: the debounce state is left unchanged.
	ErrInputRead = errors.New("debounce: input read failed")
)
