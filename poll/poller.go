package poll

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

// Poller samples a Target at a fixed interval from a single goroutine.
//
// It is safe for concurrent use: Start, Shutdown, Wait and Status may be
// called from any goroutine. The Target's Poll method, however, is only ever
// invoked from the Poller's own sampling goroutine.
type Poller struct {
	target   Target
	interval time.Duration
	cfg      config

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc

	tickCount uint64
	failCount uint64
	lastTick  time.Time
	lastError string

	done chan struct{} // closed when the poller has fully stopped
}

// New creates a Poller for target.
//
// It panics on a nil target or a non-positive interval: both are
// configuration errors, not runtime conditions.
func New(target Target, interval time.Duration, opts ...Option) *Poller {
	if target == nil {
		panic("poll: New called with nil Target")
	}
	if interval <= 0 {
		panic(fmt.Sprintf("poll: interval=%s is invalid (must be > 0)", interval))
	}

	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return &Poller{
		target:   target,
		interval: interval,
		cfg:      c,
		state:    StateNotStarted,
		done:     make(chan struct{}),
	}
}

// Start launches the sampling goroutine. It is not idempotent.
//
// Canceling ctx stops the Poller just like Shutdown does (without the wait).
// If ctx is nil, it is treated as context.Background().
func (p *Poller) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.Lock()
	switch p.state {
	case StateRunning:
		p.mu.Unlock()
		return ErrAlreadyStarted
	case StateStopping, StateStopped:
		p.mu.Unlock()
		return ErrClosed
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.state = StateRunning
	p.mu.Unlock()

	go p.loop(runCtx)
	return nil
}

// Shutdown stops sampling and waits for the sampling goroutine to exit,
// bounded by ctx. It is idempotent and safe to call even if Start was never
// called.
//
// After Shutdown returns nil, the Target is free: it is safe to Deinit a
// debouncer, for example.
func (p *Poller) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p.mu.Lock()
	switch p.state {
	case StateNotStarted:
		p.state = StateStopped
		close(p.done)
		p.mu.Unlock()
		return nil
	case StateRunning:
		p.state = StateStopping
		cancel := p.cancel
		p.mu.Unlock()
		cancel()
	default:
		p.mu.Unlock()
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the Poller has fully stopped. It is idempotent.
func (p *Poller) Wait() {
	<-p.done
}

// Status returns a snapshot of the Poller's state and counters.
func (p *Poller) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Status{
		Name:      p.cfg.name,
		State:     p.state,
		Interval:  p.interval,
		Mode:      p.cfg.mode,
		TickCount: p.tickCount,
		FailCount: p.failCount,
		LastTick:  p.lastTick,
		LastError: p.lastError,
	}
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)
	defer func() {
		p.mu.Lock()
		p.state = StateStopped
		p.mu.Unlock()
	}()

	if p.cfg.startImmediately {
		p.tick()
	}

	switch p.cfg.mode {
	case FixedDelay:
		timer := time.NewTimer(p.interval)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				p.tick()
				timer.Reset(p.interval)
			}
		}
	default: // FixedRate
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick()
			}
		}
	}
}

// tick runs one Poll with panic containment and failure accounting.
func (p *Poller) tick() {
	p.mu.Lock()
	p.tickCount++
	p.lastTick = time.Now()
	p.mu.Unlock()

	panicInfo, err := p.runOnce()

	if panicInfo != nil {
		p.recordFailure(fmt.Sprintf("panic: %v", panicInfo.Value))
		if p.cfg.onPanic != nil {
			callPanicHandlerNoPanic(p.cfg.onPanic, *panicInfo)
		} else {
			reportPanicToStderr(*panicInfo)
		}
		return
	}
	if err == nil {
		return
	}

	p.recordFailure(err.Error())
	if !p.cfg.reportContextCancel && isContextCancel(err) {
		return
	}
	info := ErrorInfo{Name: p.cfg.name, Err: err}
	if p.cfg.onError != nil {
		callErrorHandlerNoPanic(p.cfg.onError, info)
		return
	}
	reportErrorToStderr(info)
}

func (p *Poller) runOnce() (info *PanicInfo, err error) {
	defer func() {
		if pv := recover(); pv != nil {
			info = &PanicInfo{
				Name:  p.cfg.name,
				Value: pv,
				Stack: debug.Stack(),
			}
		}
	}()
	return nil, p.target.Poll()
}

func (p *Poller) recordFailure(msg string) {
	p.mu.Lock()
	p.failCount++
	p.lastError = msg
	p.mu.Unlock()
}

func isContextCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func callErrorHandlerNoPanic(h ErrorHandler, info ErrorInfo) {
	defer func() {
		if pv := recover(); pv != nil {
			// Avoid secondary panics from user handlers taking down the program.
			reportPanicToStderr(PanicInfo{
				Name:  info.Name,
				Value: fmt.Sprintf("poll: error handler panicked: %v", pv),
				Stack: debug.Stack(),
			})
		}
	}()
	h(info)
}

func callPanicHandlerNoPanic(h PanicHandler, info PanicInfo) {
	defer func() {
		if pv := recover(); pv != nil {
			// Avoid secondary panics from user handlers taking down the program.
			reportPanicToStderr(PanicInfo{
				Name:  info.Name,
				Value: fmt.Sprintf("poll: panic handler panicked: %v", pv),
				Stack: debug.Stack(),
			})
		}
	}()
	h(info)
}
