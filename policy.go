package debounce

import "fmt"

// Storage is the set of unsigned widths a packed debounce word may use.
//
// For most usages uint8 is plenty: you almost certainly don't need more.
type Storage interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Policy is the static configuration of the debouncing algorithm for one
// Debouncer instance. It is fixed at construction time and validated once, by
// Init; it is not runtime-reconfigurable.
type Policy[S Storage] struct {
	// MaxCount is the number of samples required to mark a state change.
	//
	// Unlike fixed-window debouncing, the integration approach does not require
	// MaxCount consistent samples in a row: if in n+m samples we see n of the
	// new state and m of the old state, a transition is marked once the
	// difference n-m reaches MaxCount.
	//
	// MaxCount must be greater than 1 and must be representable in two bits
	// fewer than S (e.g. at most 0x3f for uint8); otherwise Init returns
	// ErrInvalidPolicy.
	MaxCount S

	// InitHigh selects the initial debounced state. If true, the line starts
	// logical-high awaiting the first debounced falling edge; if false, it
	// starts logical-low awaiting the first debounced rising edge.
	InitHigh bool
}

// validate reports whether the policy fits its storage width.
func (p Policy[S]) validate() error {
	if p.MaxCount <= 1 {
		return fmt.Errorf("%w: MaxCount=%d (must be > 1)", ErrInvalidPolicy, p.MaxCount)
	}
	// The integrator lives above the two flag bits. MaxCount must survive the
	// shift round trip unchanged in S, or the packed layout would silently
	// truncate it.
	if (p.MaxCount<<integratorShift)>>integratorShift != p.MaxCount {
		return fmt.Errorf("%w: MaxCount=%d does not fit two bits below the storage width", ErrInvalidPolicy, p.MaxCount)
	}
	return nil
}

// ActiveHigh is a reasonable default policy for an active-high button or
// switch. If the line is polled every 10ms (100Hz), the minimum debounce
// delay is 40ms.
func ActiveHigh() Policy[uint8] {
	return Policy[uint8]{MaxCount: 4, InitHigh: false}
}

// ActiveLow is a reasonable default policy for an active-low button or
// switch. If the line is polled every 10ms (100Hz), the minimum debounce
// delay is 40ms.
func ActiveLow() Policy[uint8] {
	return Policy[uint8]{MaxCount: 4, InitHigh: true}
}

// OriginalKuhn matches the constants in Kenneth A. Kuhn's original code
// fragment. If the line is polled every 100ms (10Hz), the minimum debounce
// delay is 300ms.
func OriginalKuhn() Policy[uint8] {
	return Policy[uint8]{MaxCount: 3, InitHigh: false}
}
