// Package inputtest provides Input implementations for testing debounce
// consumers without hardware.
//
// Pin serves a fixed script of readings, one per read, and can verify that
// the script was fully consumed. LevelPin holds a settable level and is safe
// for concurrent use, which makes it suitable for poller tests.
//
// Both types satisfy the debounce.Input interface.
package inputtest

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Reading is one scripted read result served by a Pin.
type Reading struct {
	high bool
	err  error
}

// High returns a reading reporting a high level.
func High() Reading { return Reading{high: true} }

// Low returns a reading reporting a low level.
func Low() Reading { return Reading{} }

// Err returns a reading that fails with err.
func Err(err error) Reading { return Reading{err: err} }

// Pin is a scripted input line. Each ReadHigh or ReadLow consumes exactly one
// reading; reading past the end of the script fails.
//
// Pin is safe for concurrent use, but scripts are only meaningful when reads
// are serialized (one poller), which is the debounce core's contract anyway.
type Pin struct {
	mu     sync.Mutex
	script []Reading
	next   int
}

// NewPin returns a Pin that serves the given readings in order.
func NewPin(readings ...Reading) *Pin {
	return &Pin{script: readings}
}

// ReadHigh serves the next reading, reporting whether the level is high.
func (p *Pin) ReadHigh() (bool, error) {
	r, err := p.read()
	if err != nil {
		return false, err
	}
	if r.err != nil {
		return false, r.err
	}
	return r.high, nil
}

// ReadLow serves the next reading, reporting whether the level is low.
func (p *Pin) ReadLow() (bool, error) {
	r, err := p.read()
	if err != nil {
		return false, err
	}
	if r.err != nil {
		return false, r.err
	}
	return !r.high, nil
}

func (p *Pin) read() (Reading, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.next >= len(p.script) {
		return Reading{}, fmt.Errorf("inputtest: read past the end of the script (%d readings)", len(p.script))
	}
	r := p.script[p.next]
	p.next++
	return r, nil
}

// Remaining returns the number of unconsumed readings.
func (p *Pin) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.script) - p.next
}

// Done returns an error if any scripted readings were left unconsumed.
func (p *Pin) Done() error {
	if n := p.Remaining(); n != 0 {
		return fmt.Errorf("inputtest: %d scripted readings left unconsumed", n)
	}
	return nil
}

// LevelPin is a settable, error-free input line.
//
// Set and the read methods are safe for concurrent use.
type LevelPin struct {
	high atomic.Bool
}

// NewLevelPin returns a LevelPin at the given initial level.
func NewLevelPin(high bool) *LevelPin {
	p := &LevelPin{}
	p.high.Store(high)
	return p
}

// Set changes the level served by subsequent reads.
func (p *LevelPin) Set(high bool) { p.high.Store(high) }

// ReadHigh reports whether the level is high. It never fails.
func (p *LevelPin) ReadHigh() (bool, error) { return p.high.Load(), nil }

// ReadLow reports whether the level is low. It never fails.
func (p *LevelPin) ReadLow() (bool, error) { return !p.high.Load(), nil }
