package debounce

import "sync/atomic"

// Debounced is the read-only view of a Debouncer: the debounced,
// application-visible level of the line, as opposed to the instantaneous
// (possibly bouncing) raw samples.
//
// A Debounced carries no way to mutate its Debouncer and no reference to the
// input. It is valid for the lifetime of the Debouncer's storage; any number
// of copies may be read from any number of goroutines, concurrently with
// Poll.
type Debounced struct {
	word *atomic.Uint64
}

// IsHigh reports whether the debounced line is logical-high.
//
// It is a single atomic load: lock-free, allocation-free and non-blocking.
func (v *Debounced) IsHigh() bool {
	return v.word.Load()&stateMask != 0
}

// IsLow reports whether the debounced line is logical-low.
//
// It is a single atomic load: lock-free, allocation-free and non-blocking.
func (v *Debounced) IsLow() bool {
	return v.word.Load()&stateMask == 0
}
