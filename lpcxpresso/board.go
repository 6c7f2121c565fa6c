// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpcxpresso

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/lpcxpresso/v3/clock"
	"periph.io/x/lpcxpresso/v3/leds"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

// BoardName is the NuttX CONFIG_ARCH_BOARD value of this board.
const BoardName = "lpcxpresso-lpc54628"

// Config selects the board options.
type Config struct {
	Mode clock.PLLMode
	// Tickless and USecPerTick select the scheduler time base.
	Tickless    bool
	USecPerTick int
	I2CSpeed    pinmux.I2CSpeed
	// ArchLEDs reserves LED D12 to report operating system events.
	ArchLEDs bool
	Features pinmux.Feature
}

// DefaultConfig returns the configuration of the stock board: 220MHz,
// 100 ticks per second, SDRAM enabled and the boot switches left alone.
func DefaultConfig() Config {
	return Config{
		Mode:        clock.Mode220MHz,
		USecPerTick: clock.DefaultUSecPerTick,
		I2CSpeed:    pinmux.I2CStandard,
		Features:    pinmux.Console | pinmux.TouchI2C | pinmux.SDMMC | pinmux.LCD | pinmux.UserLEDs | pinmux.UserButton | pinmux.EMCSDRAM,
	}
}

// checkTickPeriod rejects a tick period no SysTick divider can produce.
// Only a Config built by hand can hold 0; it is not a request for the default.
func checkTickPeriod(usec int) error {
	if usec <= 0 {
		return &clock.ConstraintError{Kind: clock.UnsupportedTickPeriod, Clock: clock.SysTick, Value: int64(usec)}
	}
	return nil
}

func (c *Config) clockFeatures() clock.Features {
	return clock.Features{Tickless: c.Tickless, USecPerTick: c.USecPerTick}
}

// Board is an evaluated board configuration.
type Board struct {
	Config Config
	PLL    clock.PLLConfig
	Clocks *clock.Tree
	Pins   *pinmux.Map
	// Codes is the pin function table in wiring order.
	Codes   []pinmux.Code
	LEDs    *leds.Table
	Buttons *leds.Table
}

// Build evaluates cfg.
//
// The tick period is ignored when the scheduler is tickless.
func Build(cfg Config) (*Board, error) {
	if !cfg.Tickless {
		if err := checkTickPeriod(cfg.USecPerTick); err != nil {
			return nil, err
		}
	}
	pll, err := clock.SelectPLLMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	tree, err := clock.BuildTree(pll, cfg.clockFeatures())
	if err != nil {
		return nil, err
	}
	m, err := Wiring().Resolve(cfg.Features)
	if err != nil {
		return nil, err
	}
	codes, err := m.Table(pinmux.Flags{I2CSpeed: cfg.I2CSpeed})
	if err != nil {
		return nil, err
	}
	return &Board{
		Config:  cfg,
		PLL:     pll,
		Clocks:  tree,
		Pins:    m,
		Codes:   codes,
		LEDs:    UserLEDs(cfg.Features, cfg.ArchLEDs),
		Buttons: Buttons(cfg.Features),
	}, nil
}

// UserLEDs returns the LED index table, empty unless f enables the user LEDs.
// D12 is reserved for the operating system when archLEDs is set.
func UserLEDs(f pinmux.Feature, archLEDs bool) *leds.Table {
	if !f.Has(pinmux.UserLEDs) {
		return leds.Assign(nil, false)
	}
	return leds.Assign([]string{"D9", "D11", "D12"}, archLEDs)
}

// Buttons returns the button index table. SW5 is index 0 when the user button
// is enabled; SW2 to SW4 follow when the boot switches are enabled.
func Buttons(f pinmux.Feature) *leds.Table {
	var names []string
	if f.Has(pinmux.UserButton) {
		names = append(names, "USER")
	}
	if f.Has(pinmux.BootSwitches) {
		names = append(names, "SW2", "SW3", "SW4")
	}
	return leds.Assign(names, false)
}

// LEDLevel returns the pin level lighting (on) or turning off a LED. LEDs are
// lit when driven low.
func LEDLevel(on bool) gpio.Level {
	return gpio.Level(!on)
}

// Pressed reports whether a button reading l is pressed. Buttons read low
// when pressed.
func Pressed(l gpio.Level) bool {
	return l == gpio.Low
}

func (b *Board) String() string {
	return fmt.Sprintf("%s: %s, %s", BoardName, b.Config.Mode, b.Config.Features)
}
