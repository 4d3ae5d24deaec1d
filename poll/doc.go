// Package poll drives a debouncer's Poll method at a fixed interval from a
// single goroutine.
//
// The debounce core demands that Init, Poll and Deinit never overlap. A
// Poller satisfies that contract by construction: it owns exactly one
// sampling goroutine, started by Start and fully stopped by Shutdown. The
// safe arrangement is therefore:
//
//	eng := debounce.New(debounce.ActiveHigh())
//	line, err := eng.Init(pin)
//	// handle err ...
//
//	p := poll.New(eng, 10*time.Millisecond, poll.WithName("button"))
//	_ = p.Start(ctx)
//
//	// ... read line.IsHigh() from anywhere ...
//
//	_ = p.Shutdown(context.Background()) // stop sampling first,
//	_, _ = eng.Deinit(line)              // then release the input.
//
// Never share one Target between two Pollers, and never call the Target's
// mutating methods while a Poller for it is running.
//
// # Lifecycle
//
// Start is not idempotent: calling it a second time returns ErrAlreadyStarted,
// and calling it after Shutdown returns ErrClosed. Shutdown is idempotent and
// safe to call even if Start was never called; it waits for the sampling
// goroutine to exit (bounded by its context). Wait blocks until the Poller
// has fully stopped. Canceling the context passed to Start also stops the
// Poller.
//
// # Scheduling
//
// FixedRate (the default) ticks on an interval-aligned ticker; a late tick is
// never compensated by a burst of catch-up ticks. FixedDelay waits one full
// interval after each tick completes, which is gentler when a tick can be
// slow.
//
// # Error and panic reporting
//
// A Poller never stops on a failed tick: the error (typically a wrapped input
// read failure) is counted, recorded in Status, and reported via
// WithErrorHandler, or to stderr by default. Context cancellation errors are
// filtered unless WithReportContextCancel(true) is set. Panics from the
// Target are recovered and reported via WithPanicHandler (stderr by default);
// panics from handlers themselves are contained.
package poll
