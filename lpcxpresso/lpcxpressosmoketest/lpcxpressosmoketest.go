// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lpcxpressosmoketest evaluates every LPCXpresso-LPC54628 board
// configuration and verifies the derived clocks and pin assignments are
// consistent.
package lpcxpressosmoketest

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"periph.io/x/lpcxpresso/v3/clock"
	"periph.io/x/lpcxpresso/v3/lpcxpresso"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

// SmokeTest is imported by lpcxboard.
type SmokeTest struct {
	// Out receives the progress; os.Stdout if nil.
	Out io.Writer
}

// Name implements the SmokeTest interface.
func (s *SmokeTest) Name() string {
	return "lpcxpresso"
}

// Description implements the SmokeTest interface.
func (s *SmokeTest) Description() string {
	return "Evaluates every LPCXpresso-LPC54628 board configuration"
}

// Run implements the SmokeTest interface.
func (s *SmokeTest) Run(f *flag.FlagSet, args []string) error {
	verbose := f.Bool("v", false, "print every configuration")
	if err := f.Parse(args); err != nil {
		return err
	}
	if f.NArg() != 0 {
		f.Usage()
		return errors.New("unrecognized arguments")
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	var logf func(string, ...interface{})
	if *verbose {
		logf = func(format string, v ...interface{}) { fmt.Fprintf(out, "  "+format+"\n", v...) }
	}
	res, err := Sweep(logf)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d configurations built, %d rejected\n", s.Name(), res.Built, res.Rejected)
	return nil
}

// Result counts the configurations evaluated by Sweep.
type Result struct {
	Built    int
	Rejected int
}

// Sweep builds every combination of PLL mode, I²C speed, scheduler time base,
// LED reservation and feature set.
//
// Only the combinations enabling both the SDRAM and the boot switches may be
// rejected, and only with a pin conflict. logf, if not nil, is called once
// per configuration.
func Sweep(logf func(format string, v ...interface{})) (Result, error) {
	var res Result
	for _, mode := range clock.Modes() {
		for _, speed := range []pinmux.I2CSpeed{pinmux.I2CStandard, pinmux.I2CFast, pinmux.I2CHigh} {
			for _, tickless := range []bool{false, true} {
				for _, archLEDs := range []bool{false, true} {
					for f := pinmux.NoFeature; f <= pinmux.AllFeatures; f++ {
						cfg := lpcxpresso.DefaultConfig()
						cfg.Mode = mode
						cfg.I2CSpeed = speed
						cfg.Tickless = tickless
						cfg.ArchLEDs = archLEDs
						cfg.Features = f
						if err := sweepOne(cfg, &res, logf); err != nil {
							return res, err
						}
					}
				}
			}
		}
	}
	return res, nil
}

func sweepOne(cfg lpcxpresso.Config, res *Result, logf func(format string, v ...interface{})) error {
	b, err := lpcxpresso.Build(cfg)
	conflict := cfg.Features.Has(pinmux.EMCSDRAM | pinmux.BootSwitches)
	if err != nil {
		var c *pinmux.ConflictError
		if !conflict || !errors.As(err, &c) {
			return fmt.Errorf("%s %s tickless=%t arch-leds=%t %s: %w", cfg.Mode, cfg.I2CSpeed, cfg.Tickless, cfg.ArchLEDs, cfg.Features, err)
		}
		if logf != nil {
			logf("%s %s tickless=%t arch-leds=%t %s: %v", cfg.Mode, cfg.I2CSpeed, cfg.Tickless, cfg.ArchLEDs, cfg.Features, err)
		}
		res.Rejected++
		return nil
	}
	if conflict {
		return fmt.Errorf("%s %s %s: conflict not detected", cfg.Mode, cfg.I2CSpeed, cfg.Features)
	}
	if err := check(b); err != nil {
		return fmt.Errorf("%s: %w", b, err)
	}
	if logf != nil {
		logf("%s", b)
	}
	res.Built++
	return nil
}

// check verifies the derived values of b.
func check(b *lpcxpresso.Board) error {
	for _, c := range b.Clocks.Clocks() {
		if c.Max != 0 && c.Freq > c.Max {
			return fmt.Errorf("%s above %s", c, c.Max)
		}
		if c.Parent != "" && (c.Divider < 1 || c.Divider > clock.MaxDivider) {
			return fmt.Errorf("%s: invalid divider", c)
		}
	}
	if r, ok := b.Clocks.SysTickReload(); ok == b.Config.Tickless || (ok && r >= clock.MaxReload) {
		return fmt.Errorf("invalid SysTick reload %d", r)
	}
	seen := map[string]string{}
	for _, c := range b.Codes {
		if prev, ok := seen[c.Pin.Name()]; ok {
			return fmt.Errorf("%s used by %s and %s", c.Pin, prev, c.Signal)
		}
		seen[c.Pin.Name()] = c.Signal
		s, ok := b.Pins.Owner(c.Pin)
		if !ok || s.Name != c.Signal {
			return fmt.Errorf("%s: owner mismatch", c.Pin)
		}
		if !b.Config.Features.Has(s.Feature) {
			return fmt.Errorf("%s enabled without its feature", s)
		}
	}
	return checkTables(b)
}

// checkTables verifies the LED and button tables follow the enabled features
// and that every entry, the reserved LED included, is a claimed pin.
func checkTables(b *lpcxpresso.Board) error {
	f := b.Config.Features
	wantLEDs := 0
	if f.Has(pinmux.UserLEDs) {
		wantLEDs = 3
		if b.Config.ArchLEDs {
			wantLEDs = 2
		}
	}
	if n := b.LEDs.Len(); n != wantLEDs {
		return fmt.Errorf("%d LEDs, want %d", n, wantLEDs)
	}
	names := b.LEDs.Names()
	name, _, _, ok := b.LEDs.Reserved()
	if ok != (wantLEDs == 2) {
		return fmt.Errorf("reserved LED %q: %t", name, ok)
	}
	if ok {
		names = append(names, name)
	}
	wantButtons := 0
	if f.Has(pinmux.UserButton) {
		wantButtons++
	}
	if f.Has(pinmux.BootSwitches) {
		wantButtons += 3
	}
	if n := b.Buttons.Len(); n != wantButtons {
		return fmt.Errorf("%d buttons, want %d", n, wantButtons)
	}
	for _, n := range append(names, b.Buttons.Names()...) {
		if n == "USER" {
			n = "SW5"
		}
		if !claimed(b, n) {
			return fmt.Errorf("%s: pin not claimed", n)
		}
	}
	return nil
}

func claimed(b *lpcxpresso.Board, signal string) bool {
	for _, c := range b.Codes {
		if c.Signal == signal {
			return true
		}
	}
	return false
}
