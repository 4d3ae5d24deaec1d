// Package debounce suppresses transient state changes on a noisy digital
// input line so that only a sustained change is reported downstream.
//
// Even digital inputs bounce: flapping contacts in a button or switch, and RF
// noise on a line, both produce short runs of wrong samples. This package
// implements the integration-based debouncing algorithm described by Kenneth
// A. Kuhn: instead of requiring MaxCount identical samples in a row, a
// saturating integrator is incremented on each sample of the new state and
// decremented on each sample of the old state, and the debounced state flips
// only when the integrator saturates. Occasional inconsistent samples subtract
// from the accumulated evidence rather than resetting it.
//
// # Quick start
//
// Bring an Input (a way to read the raw line; see the gpiodpin and rpiopin
// subpackages, or implement the two methods yourself), pick a Policy, and
// arrange for Poll to be called on a regular basis:
//
//	eng := debounce.New(debounce.ActiveHigh())
//	line, err := eng.Init(pin)
//	if err != nil {
//		// ...
//	}
//
//	// In a single timer callback or goroutine (see the poll subpackage):
//	_ = eng.Poll()
//
//	// Anywhere, concurrently:
//	if line.IsHigh() {
//		// ...
//	}
//
// # Choosing MaxCount
//
// If d is the minimum debounce delay in seconds and f is the poll frequency in
// Hz, set Policy.MaxCount to the product d*f. For instance, polling at 100Hz
// with a minimum delay of 50ms, set it to 5. The canned policies ActiveHigh,
// ActiveLow and OriginalKuhn cover the common button/switch cases.
//
// # State and concurrency
//
// All debounce state lives in one packed atomic word: the debounced state bit,
// an initialized bit, and the integrator. Every update is a single atomic
// store of the whole word, so reads through the Debounced view are lock-free,
// allocation-free and non-blocking, and may run from any number of goroutines
// concurrently with Poll. A reader observes either the pre-tick or the
// post-tick state, never a torn mix.
//
// The mutating operations carry a caller-enforced serialization contract: at
// most one of Init, Poll and Deinit may be in flight on a given Debouncer at
// any instant. The package takes no lock; the zero-overhead arrangement is a
// single polling goroutine or timer callback, started only after Init returns
// and stopped before Deinit. The poll subpackage provides exactly that.
//
// # Lifecycle
//
// A Debouncer owns its Input between Init and Deinit; no other code may use
// the handle during that window. Deinit zeroes the state, returns the Input,
// and leaves the Debouncer ready for a fresh Init.
//
// # Subpackages
//
//   - github.com/evan-idocoding/debounce/poll: periodic sampling runtime (single-goroutine Poll driver)
//   - github.com/evan-idocoding/debounce/gpiodpin: Input adapter for character-device GPIO (warthog618/gpiod)
//   - github.com/evan-idocoding/debounce/rpiopin: Input adapter for memory-mapped Raspberry Pi GPIO (stianeikeland/go-rpio)
//   - github.com/evan-idocoding/debounce/inputtest: scripted and settable Inputs for tests
package debounce
