// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmux

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// IOCON register bits.
const (
	ioconFuncMask  = 0xf << 0
	ioconModeShift = 4 // Type D and A
	ioconInvert    = 1 << 7
	ioconDigimode  = 1 << 8
	ioconFilterOff = 1 << 9
	ioconSlew      = 1 << 10 // Type D
	ioconI2CDrive  = 1 << 10 // Type I
	ioconOD        = 1 << 11 // Type D
	ioconI2CFilter = 1 << 11 // Type I, set to disable the filter
	ioconODTypeA   = 1 << 10 // Type A
)

// IOCON MODE values.
const (
	modeInactive = 0
	modePullDown = 1
	modePullUp   = 2
)

// Code is the pin function code of one signal, as consumed by the pin-mux
// driver at board bring-up.
type Code struct {
	Signal string
	Pin    *Pin
	// Alt is the IOCON FUNC value.
	Alt  int
	Func pin.Func
	Pull gpio.Pull
	// Digital is the IOCON DIGIMODE bit.
	Digital   bool
	FilterOff bool
	OpenDrain bool
	Invert    bool
	// I2CFilter enables the I²C glitch filter of type I pins.
	I2CFilter bool
	// I2CDrive selects the high drive of type I pins.
	I2CDrive bool
}

// IOCON returns the IOCON register value for the pin.
func (c *Code) IOCON() uint32 {
	v := uint32(c.Alt) & ioconFuncMask
	if c.Invert {
		v |= ioconInvert
	}
	if c.Digital {
		v |= ioconDigimode
	}
	if c.FilterOff {
		v |= ioconFilterOff
	}
	switch c.Pin.Type() {
	case TypeI:
		if c.I2CDrive {
			v |= ioconI2CDrive
		}
		if !c.I2CFilter {
			v |= ioconI2CFilter
		}
	case TypeA:
		v |= mode(c.Pull) << ioconModeShift
		if c.OpenDrain {
			v |= ioconODTypeA
		}
	default:
		v |= mode(c.Pull) << ioconModeShift
		if c.OpenDrain {
			v |= ioconOD
		}
	}
	return v
}

func (c *Code) String() string {
	return fmt.Sprintf("%s: %s %s (FUNC%d) IOCON=0x%03X", c.Signal, c.Pin, c.Func, c.Alt, c.IOCON())
}

func mode(p gpio.Pull) uint32 {
	switch p {
	case gpio.PullDown:
		return modePullDown
	case gpio.PullUp:
		return modePullUp
	default:
		return modeInactive
	}
}

// encode returns the code of s on p.
func encode(s Signal, p *Pin, f Flags) (Code, error) {
	alt, ok := p.Alt(s.Func)
	if !ok {
		return Code{}, fmt.Errorf("%w: %s on %s", ErrNoFunction, s.Func, p)
	}
	c := Code{
		Signal:    s.Name,
		Pin:       p,
		Alt:       alt,
		Func:      s.Func,
		Pull:      s.Attr.Pull,
		Digital:   !s.Attr.Analog,
		FilterOff: s.Attr.FilterOff,
		OpenDrain: s.Attr.OpenDrain,
		Invert:    s.Attr.Invert,
	}
	if s.I2C {
		// Standard mode needs the I²C filter with low drive; fast and
		// high speed modes need the filter off with high drive.
		switch f.I2CSpeed {
		case I2CFast, I2CHigh:
			c.I2CFilter = false
			c.I2CDrive = true
		default:
			c.I2CFilter = true
			c.I2CDrive = false
		}
		if p.Type() != TypeI {
			// Type D and A pins need pseudo open drain for I²C.
			c.OpenDrain = true
		}
	}
	return c, nil
}
