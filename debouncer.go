package debounce

import (
	"fmt"
	"sync/atomic"
)

// Debouncer debounces a single noisy digital input line. One Debouncer
// debounces one line; to debounce many lines, use one instance per line.
//
// The zero value (and New) is uninitialized: call Init before Poll.
//
// Serialization contract: at most one of Init, Poll and Deinit may be in
// flight on a given Debouncer at any instant, and none may overlap each other.
// Enforcement is the caller's responsibility; the usual arrangement is to Init
// before starting the polling context, run Poll from exactly one goroutine or
// timer callback, and stop that context before Deinit. Reads through the
// Debounced view carry no such restriction.
type Debouncer[S Storage] struct {
	policy Policy[S]

	// word holds the packed state (see word.go). All arithmetic happens in S
	// and is widened losslessly for storage, so the layout invariants are
	// those of the configured width.
	word atomic.Uint64

	// in is owned by the Debouncer between Init and Deinit. nil means absent.
	in Input
}

// New creates an uninitialized Debouncer with the given policy.
//
// The policy is validated by Init, not here, so New never fails and is safe
// to run at package init time (e.g. for a package-level Debouncer shared with
// a timer callback).
func New[S Storage](policy Policy[S]) *Debouncer[S] {
	return &Debouncer[S]{policy: policy}
}

// Init validates the policy, takes ownership of the input, writes the initial
// state, and returns the read-only Debounced view of this Debouncer.
//
// The initial state follows Policy.InitHigh: either logical-low with an empty
// integrator, or logical-high with a saturated one.
//
// Errors:
//   - ErrInvalidPolicy: the policy does not fit its storage width.
//   - ErrAlreadyInitialized: Init already completed; Deinit first.
//
// Init must fully complete before the first Poll, and must not run
// concurrently with any other operation on this Debouncer.
func (d *Debouncer[S]) Init(in Input) (*Debounced, error) {
	if in == nil {
		panic("debounce: Init called with nil Input")
	}
	if err := d.policy.validate(); err != nil {
		return nil, err
	}
	if d.initialized() {
		return nil, ErrAlreadyInitialized
	}

	d.in = in

	f := fields[S]{Init: true}
	if d.policy.InitHigh {
		f.High = true
		f.Integrator = d.policy.MaxCount
	}
	d.word.Store(uint64(pack(f)))

	return &Debounced{word: &d.word}, nil
}

// Poll samples the input once and updates the debounce state. Call it on a
// regular basis, at roughly the frequency assumed when choosing
// Policy.MaxCount (the poll subpackage provides a driver).
//
// A low sample decrements the integrator by one unit unless it is already
// empty; reaching empty clears the debounced state. Any other sample
// increments it by one unit unless it is already saturated; reaching
// saturation sets the debounced state. The state bit therefore changes at
// most once per tick, and only at saturation.
//
// Errors:
//   - ErrNotInitialized: Init has not completed (defensive check; the state is
//     left untouched).
//   - ErrInputRead, wrapping the input's own error: the read failed. The tick
//     is skipped with the integrator unchanged, so a transient read failure
//     never erases accumulated debounce progress. Retry is simply the next
//     scheduled Poll.
//
// Poll must not run concurrently with any other operation on this Debouncer.
func (d *Debouncer[S]) Poll() error {
	f := unpack(S(d.word.Load()))
	if !f.Init {
		return ErrNotInitialized
	}

	low, err := d.in.ReadLow()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInputRead, err)
	}

	if low {
		if f.Integrator > 0 {
			f.Integrator--
		}
		if f.Integrator == 0 {
			f.High = false
		}
	} else {
		// TODO: re-verify with ReadHigh instead of treating any non-low
		// reading as the increment trigger.
		if f.Integrator < d.policy.MaxCount {
			f.Integrator++
		}
		if f.Integrator == d.policy.MaxCount {
			f.High = true
		}
	}

	d.word.Store(uint64(pack(f)))
	return nil
}

// Deinit zeroes the debounce state and returns ownership of the input. The
// Debouncer may subsequently be re-initialized, with the same input or a new
// one.
//
// v must be the view produced by this Debouncer's Init.
//
// Errors:
//   - ErrNotInitialized: the Debouncer is already uninitialized.
//   - ErrViewMismatch: v is nil or bound to a different Debouncer. The view is
//     returned unconsumed (it stays valid for its own Debouncer) and this
//     Debouncer's state is unchanged.
//
// Deinit must not run concurrently with any other operation on this Debouncer;
// stop the polling context first.
func (d *Debouncer[S]) Deinit(v *Debounced) (Input, error) {
	if !d.initialized() {
		return nil, ErrNotInitialized
	}
	if v == nil || v.word != &d.word {
		return nil, ErrViewMismatch
	}

	d.word.Store(0)
	in := d.in
	d.in = nil
	return in, nil
}

func (d *Debouncer[S]) initialized() bool {
	return S(d.word.Load())&initMask != 0
}
