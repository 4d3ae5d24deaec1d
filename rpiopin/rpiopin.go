// Package rpiopin adapts memory-mapped Raspberry Pi GPIO pins (BCM2835
// registers, via github.com/stianeikeland/go-rpio) to the debounce.Input
// interface.
//
// The caller owns the rpio lifecycle: call rpio.Open before reading and
// rpio.Close when done.
//
//	if err := rpio.Open(); err != nil {
//		// ...
//	}
//	defer rpio.Close()
//
//	pin := rpiopin.InputPullUp(17) // active-low wiring to ground
//	eng := debounce.New(debounce.ActiveLow())
//	line, err := eng.Init(pin)
//	// ...
package rpiopin

import (
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/evan-idocoding/debounce"
)

// Pin is a debounce.Input backed by a BCM-numbered rpio pin.
//
// Reads are plain register reads and cannot fail, so ReadHigh and ReadLow
// always return a nil error.
type Pin struct {
	pin rpio.Pin
}

var _ debounce.Input = Pin{}

// Input configures the BCM pin as an input with no pull and wraps it.
func Input(bcm int) Pin {
	pin := rpio.Pin(bcm)
	pin.Input()
	return Pin{pin: pin}
}

// InputPullUp is Input with the internal pull-up enabled, the usual wiring
// for a button switching to ground.
func InputPullUp(bcm int) Pin {
	pin := rpio.Pin(bcm)
	pin.Input()
	pin.PullUp()
	return Pin{pin: pin}
}

// InputPullDown is Input with the internal pull-down enabled, the usual
// wiring for a button switching to 3V3.
func InputPullDown(bcm int) Pin {
	pin := rpio.Pin(bcm)
	pin.Input()
	pin.PullDown()
	return Pin{pin: pin}
}

// ReadHigh reports whether the pin level is high. It never fails.
func (p Pin) ReadHigh() (bool, error) {
	return p.pin.Read() == rpio.High, nil
}

// ReadLow reports whether the pin level is low. It never fails.
func (p Pin) ReadLow() (bool, error) {
	return p.pin.Read() == rpio.Low, nil
}
