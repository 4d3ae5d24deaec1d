package debounce

// Packed word layout, low bit to high:
//
//	bit 0    debounced logical state (1 = high)
//	bit 1    initialized flag
//	bits 2.. integrator, one unit = 1<<2, in [0, MaxCount<<2]
//
// The three fields share one word so a reader can observe all of them with a
// single load: concurrent readers see a pre-tick or post-tick word, never a
// torn mix of flag and integrator bits.
const (
	stateMask       = 1 << 0
	initMask        = 1 << 1
	integratorShift = 2
)

// fields is the unpacked form of a debounce word. Integrator holds the
// unscaled count, in [0, MaxCount].
type fields[S Storage] struct {
	High       bool
	Init       bool
	Integrator S
}

func pack[S Storage](f fields[S]) S {
	w := f.Integrator << integratorShift
	if f.High {
		w |= stateMask
	}
	if f.Init {
		w |= initMask
	}
	return w
}

func unpack[S Storage](w S) fields[S] {
	return fields[S]{
		High:       w&stateMask != 0,
		Init:       w&initMask != 0,
		Integrator: w >> integratorShift,
	}
}
