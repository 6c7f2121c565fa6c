// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmux

import (
	"fmt"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// Feature is a set of board features. Each feature enables a group of
// signals.
type Feature uint32

// Board features.
const (
	// Console is USART0 connected to the on-board serial bridge.
	Console Feature = 1 << iota
	// TouchI2C is I2C2 connected to the touch screen controller.
	TouchI2C
	// SDMMC is the SD card slot.
	SDMMC
	// LCD is the LCD panel data lines that have pin alternatives.
	LCD
	// UserLEDs is LEDs D9, D11 and D12.
	UserLEDs
	// UserButton is SW5.
	UserButton
	// BootSwitches is the ISP boot mode switches SW2, SW3 and SW4 used as
	// buttons after boot.
	BootSwitches
	// EMCSDRAM is the external memory controller driving the on-board
	// SDRAM.
	EMCSDRAM

	// NoFeature is the empty set.
	NoFeature Feature = 0
	// AllFeatures is every feature, including conflicting ones.
	AllFeatures = Console | TouchI2C | SDMMC | LCD | UserLEDs | UserButton | BootSwitches | EMCSDRAM
)

var featureNames = []struct {
	f    Feature
	name string
}{
	{Console, "console"},
	{TouchI2C, "touch-i2c"},
	{SDMMC, "sdmmc"},
	{LCD, "lcd"},
	{UserLEDs, "leds"},
	{UserButton, "button"},
	{BootSwitches, "boot-switches"},
	{EMCSDRAM, "emc-sdram"},
}

// Has reports whether every feature of o is in f.
func (f Feature) Has(o Feature) bool {
	return f&o == o
}

func (f Feature) String() string {
	if f == NoFeature {
		return "none"
	}
	var out []string
	for _, n := range featureNames {
		if f&n.f != 0 {
			out = append(out, n.name)
			f &^= n.f
		}
	}
	if f != 0 {
		out = append(out, fmt.Sprintf("0x%x", uint32(f)))
	}
	return strings.Join(out, "|")
}

// ParseFeature returns the feature set described by a list of feature names
// separated by commas or '|'.
func ParseFeature(s string) (Feature, error) {
	var out Feature
	for _, n := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		n = strings.TrimSpace(n)
		found := false
		for _, fn := range featureNames {
			if fn.name == n {
				out |= fn.f
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("pinmux: unknown feature %q", n)
		}
	}
	return out, nil
}

// I2CSpeed selects the electrical variant of the I²C pins.
type I2CSpeed int

// I²C modes.
const (
	I2CStandard I2CSpeed = iota
	I2CFast
	I2CHigh
)

func (s I2CSpeed) String() string {
	switch s {
	case I2CStandard:
		return "standard"
	case I2CFast:
		return "fast"
	case I2CHigh:
		return "high"
	default:
		return fmt.Sprintf("I2CSpeed(%d)", int(s))
	}
}

// ParseI2CSpeed returns the I2CSpeed named s.
func ParseI2CSpeed(s string) (I2CSpeed, error) {
	for _, v := range []I2CSpeed{I2CStandard, I2CFast, I2CHigh} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("pinmux: unknown I2C speed %q", s)
}

// Flags selects the electrical variants of signals.
type Flags struct {
	I2CSpeed I2CSpeed
}

// Attr is the electrical configuration of a signal.
type Attr struct {
	// Pull is the IOCON MODE of type D and A pins. gpio.PullNoChange is
	// treated as gpio.Float.
	Pull gpio.Pull
	// FilterOff disables the input glitch filter.
	FilterOff bool
	// OpenDrain enables the pseudo open drain of type D and A pins.
	OpenDrain bool
	// Invert inverts the input.
	Invert bool
	// Analog clears DIGIMODE.
	Analog bool
}

// Signal is a board-level logical function.
type Signal struct {
	// Name is the board name of the signal, e.g. "USART0_RXD".
	Name string
	// Feature is the single feature that enables the signal.
	Feature Feature
	// Func is the pin function carrying the signal, GPIO for signals
	// driven by software.
	Func pin.Func
	Attr Attr
	// I2C selects the I²C electrical variants keyed on Flags.I2CSpeed.
	I2C bool
}

func (s Signal) String() string {
	return fmt.Sprintf("%s(%s)", s.Name, s.Feature)
}
