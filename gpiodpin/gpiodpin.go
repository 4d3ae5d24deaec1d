// Package gpiodpin adapts character-device GPIO lines (/dev/gpiochipN, via
// github.com/warthog618/gpiod) to the debounce.Input interface.
//
// Use Request for the common case of requesting one input line, or Wrap to
// adapt a line you requested yourself (e.g. with pull-bias or active-low
// options):
//
//	pin, err := gpiodpin.Request("gpiochip0", 17)
//	// handle err ...
//	defer pin.Close()
//
//	eng := debounce.New(debounce.ActiveHigh())
//	line, err := eng.Init(pin)
//	// ...
package gpiodpin

import (
	"github.com/warthog618/gpiod"

	"github.com/evan-idocoding/debounce"
)

// Pin is a debounce.Input backed by a requested gpiod line.
type Pin struct {
	line *gpiod.Line
}

var _ debounce.Input = (*Pin)(nil)

// Wrap adapts an already-requested line. The line must have been requested as
// an input; the caller keeps ownership of its lifecycle.
func Wrap(line *gpiod.Line) *Pin {
	if line == nil {
		panic("gpiodpin: Wrap called with nil line")
	}
	return &Pin{line: line}
}

// Request requests offset on chip as an input line and wraps it. Close
// releases the line.
//
// Additional request options (pull bias, active-low, ...) may be passed
// through.
func Request(chip string, offset int, opts ...gpiod.LineReqOption) (*Pin, error) {
	reqOpts := append([]gpiod.LineReqOption{gpiod.AsInput}, opts...)
	line, err := gpiod.RequestLine(chip, offset, reqOpts...)
	if err != nil {
		return nil, err
	}
	return &Pin{line: line}, nil
}

// ReadHigh reports whether the line level is high.
func (p *Pin) ReadHigh() (bool, error) {
	v, err := p.line.Value()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadLow reports whether the line level is low.
func (p *Pin) ReadLow() (bool, error) {
	v, err := p.line.Value()
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// Close releases the underlying line. Only call it for pins created with
// Request, or when ownership of a wrapped line has been handed over.
func (p *Pin) Close() error {
	return p.line.Close()
}
