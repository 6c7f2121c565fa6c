// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestSelectPLLMode(t *testing.T) {
	data := []struct {
		mode PLLMode
		src  SourceKind
		fout physic.Frequency
		fcco physic.Frequency
	}{
		{Mode220MHz, InternalOscillatorSource, 220 * physic.MegaHertz, 440 * physic.MegaHertz},
		{Mode180MHz, ExternalClockInSource, 180 * physic.MegaHertz, 360 * physic.MegaHertz},
	}
	for _, line := range data {
		c, err := SelectPLLMode(line.mode)
		if err != nil {
			t.Fatalf("%s: %v", line.mode, err)
		}
		if c.Mode != line.mode {
			t.Errorf("%s: got mode %s", line.mode, c.Mode)
		}
		if c.Source.Kind != line.src {
			t.Errorf("%s: got source %s, want %s", line.mode, c.Source.Kind, line.src)
		}
		if f := c.Fout(); f != line.fout {
			t.Errorf("%s: Fout = %s, want %s", line.mode, f, line.fout)
		}
		if f := c.Fcco(); f != line.fcco {
			t.Errorf("%s: Fcco = %s, want %s", line.mode, f, line.fcco)
		}
	}
}

func TestModes_FccoInRange(t *testing.T) {
	for _, m := range Modes() {
		c, err := SelectPLLMode(m)
		if err != nil {
			t.Fatal(err)
		}
		// 2*M*Fin/N computed independently of Fcco().
		fcco := 2 * int64(c.M) * int64(c.Fin()/physic.Hertz) / int64(c.N)
		if fcco < 275000000 || fcco > 550000000 {
			t.Errorf("%s: Fcco %dHz out of range", m, fcco)
		}
		fref := int64(c.Fin()/physic.Hertz) / int64(c.N)
		if fref < 4000 || fref > 25000000 {
			t.Errorf("%s: Fref %dHz out of range", m, fref)
		}
	}
}

func TestSelectPLLMode_registers(t *testing.T) {
	c, err := SelectPLLMode(Mode220MHz)
	if err != nil {
		t.Fatal(err)
	}
	if c.MDEC != 13243 || c.NDEC != 1 || c.PDEC != 98 {
		t.Errorf("unexpected encoded dividers %d %d %d", c.MDEC, c.NDEC, c.PDEC)
	}
	if c.SELI != 34 || c.SELP != 31 || c.SELR != 0 {
		t.Errorf("unexpected bandwidth %d %d %d", c.SELI, c.SELP, c.SELR)
	}
}

func TestSelectPLLMode_unknown(t *testing.T) {
	if _, err := SelectPLLMode(PLLMode(42)); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	if _, err := SelectPLLMode(0); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestPLLConfig_Validate(t *testing.T) {
	fro := InternalOscillator(FRO12MHz)
	data := []struct {
		name string
		c    PLLConfig
		want error
	}{
		{"ok", PLLConfig{Source: fro, N: 1, M: 15, P: 1}, nil},
		{"fcco low", PLLConfig{Source: fro, N: 1, M: 10, P: 1}, ErrFccoOutOfRange},
		{"fcco high", PLLConfig{Source: fro, N: 1, M: 23, P: 1}, ErrFccoOutOfRange},
		{"fcco lower bound", PLLConfig{Source: InternalOscillator(11 * physic.MegaHertz), N: 2, M: 25, P: 1}, nil},
		{"fref low", PLLConfig{Source: fro, N: 4000, M: 60000, P: 1}, ErrRefFrequencyOutOfRange},
		{"fref high", PLLConfig{Source: ExternalClockIn(30 * physic.MegaHertz), N: 1, M: 5, P: 1}, ErrRefFrequencyOutOfRange},
		{"zero N", PLLConfig{Source: fro, N: 0, M: 15, P: 1}, ErrDividerOutOfRange},
		{"zero P", PLLConfig{Source: fro, N: 1, M: 15, P: 0}, ErrDividerOutOfRange},
	}
	for _, line := range data {
		err := line.c.Validate()
		if line.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", line.name, err)
			}
			continue
		}
		if !errors.Is(err, line.want) {
			t.Errorf("%s: got %v, want %v", line.name, err, line.want)
		}
	}
}

func TestPLLConfig_ValidateDetail(t *testing.T) {
	c := PLLConfig{Source: InternalOscillator(FRO12MHz), N: 1, M: 30, P: 1}
	var ce *ConstraintError
	if err := c.Validate(); !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %v", err)
	}
	if ce.Kind != FccoOutOfRange || ce.Clock != PLL || ce.Value != 720000000 {
		t.Errorf("unexpected detail %#v", ce)
	}
	if ce.Min != 275000000 || ce.Max != 550000000 {
		t.Errorf("unexpected bounds %d %d", ce.Min, ce.Max)
	}
	if s := ce.Error(); s != "clock: pll: Fcco out of range: 720MHz not within [275MHz, 550MHz]" {
		t.Errorf("unexpected message %q", s)
	}
}

func TestParseMode(t *testing.T) {
	data := []struct {
		in   string
		want PLLMode
	}{
		{"220MHz", Mode220MHz},
		{"220", Mode220MHz},
		{"180MHz", Mode180MHz},
		{"180", Mode180MHz},
	}
	for _, line := range data {
		m, err := ParseMode(line.in)
		if err != nil {
			t.Errorf("%q: %v", line.in, err)
		} else if m != line.want {
			t.Errorf("%q: got %s, want %s", line.in, m, line.want)
		}
	}
	if _, err := ParseMode("200"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}
