package poll

import (
	"fmt"
	"time"
)

// Target is anything pollable on a schedule. *debounce.Debouncer satisfies it.
//
// Poll is always invoked from the Poller's single sampling goroutine.
type Target interface {
	Poll() error
}

// Mode controls the scheduling semantics of a Poller.
type Mode int

const (
	// FixedRate ticks on an interval-aligned ticker. It never "catches up" by
	// emitting a burst of missed ticks.
	FixedRate Mode = iota
	// FixedDelay waits one full interval after each tick completes.
	FixedDelay
)

func (m Mode) String() string {
	switch m {
	case FixedRate:
		return "fixed-rate"
	case FixedDelay:
		return "fixed-delay"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is the high-level lifecycle state of a Poller.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrorHandler is called when a tick returns a non-nil error (subject to filtering).
type ErrorHandler func(info ErrorInfo)

// ErrorInfo describes a failed tick.
type ErrorInfo struct {
	Name string
	Err  error
}

// PanicHandler is called when a tick panics.
type PanicHandler func(info PanicInfo)

// PanicInfo describes a recovered tick panic.
type PanicInfo struct {
	Name  string
	Value any
	Stack []byte
}

// Status is a point-in-time snapshot of a Poller.
type Status struct {
	Name     string
	State    State
	Interval time.Duration
	Mode     Mode

	TickCount uint64
	FailCount uint64

	LastTick time.Time
	// LastError is the most recent tick failure (error or panic). It is NOT
	// cleared on success; use the counters to interpret recency.
	LastError string
}
