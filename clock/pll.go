// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// SourceKind is the oscillator feeding the PLL.
type SourceKind int

// Oscillators the PLL can be fed from.
const (
	InternalOscillatorSource SourceKind = iota + 1
	ExternalClockInSource
)

func (s SourceKind) String() string {
	switch s {
	case InternalOscillatorSource:
		return "FRO"
	case ExternalClockInSource:
		return "CLKIN"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(s))
	}
}

// Source is a PLL reference clock. It is fixed per board revision.
type Source struct {
	Kind SourceKind
	Freq physic.Frequency
}

// InternalOscillator returns the on-chip free running oscillator source.
func InternalOscillator(f physic.Frequency) Source {
	return Source{Kind: InternalOscillatorSource, Freq: f}
}

// ExternalClockIn returns the CLKIN pin source.
func ExternalClockIn(f physic.Frequency) Source {
	return Source{Kind: ExternalClockInSource, Freq: f}
}

func (s Source) String() string {
	return fmt.Sprintf("%s %s", s.Kind, s.Freq)
}

// id returns the tree node name of the source.
func (s Source) id() ID {
	if s.Kind == ExternalClockInSource {
		return CLKIN
	}
	return FRO12M
}

// FRO12MHz is the frequency of the internal 12MHz free running oscillator.
const FRO12MHz = 12 * physic.MegaHertz

// PLL limits.
const (
	FccoMin = 275 * physic.MegaHertz
	FccoMax = 550 * physic.MegaHertz
	FrefMin = 4 * physic.KiloHertz
	FrefMax = 25 * physic.MegaHertz
)

// PLLMode is one of the supported PLL operating points.
//
// Only the modes listed here are valid; there is no way to request an
// arbitrary output frequency.
type PLLMode int

// Supported PLL operating points.
const (
	Mode220MHz PLLMode = iota + 1
	Mode180MHz
)

func (m PLLMode) String() string {
	switch m {
	case Mode220MHz:
		return "220MHz"
	case Mode180MHz:
		return "180MHz"
	default:
		return fmt.Sprintf("PLLMode(%d)", int(m))
	}
}

// Modes returns the supported PLL modes.
func Modes() []PLLMode {
	return []PLLMode{Mode220MHz, Mode180MHz}
}

// ParseMode returns the PLLMode matching s, such as "220MHz" or "180".
func ParseMode(s string) (PLLMode, error) {
	for _, m := range Modes() {
		if s == m.String() || s+"MHz" == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// PLLConfig is a system PLL operating point.
//
// N, M and P are the decoded divider values used for the arithmetic. NDEC,
// MDEC and PDEC are the encoded forms programmed in the SYSPLLNDEC,
// SYSPLLMDEC and SYSPLLPDEC registers and SELI, SELP and SELR the bandwidth
// selection of SYSPLLCTRL. The encoded values are carried as is.
type PLLConfig struct {
	Mode   PLLMode
	Source Source

	N int
	M int
	P int

	NDEC uint32
	MDEC uint32
	PDEC uint32

	SELI uint32
	SELP uint32
	SELR uint32
}

// Fin returns the PLL input frequency.
func (c *PLLConfig) Fin() physic.Frequency {
	return c.Source.Freq
}

// Fref returns the phase detector input frequency, Fin / N.
func (c *PLLConfig) Fref() physic.Frequency {
	return fromHz(toHz(c.Fin()) / int64(c.N))
}

// Fcco returns the PLL oscillator frequency, 2 x M x Fin / N.
func (c *PLLConfig) Fcco() physic.Frequency {
	return fromHz(2 * int64(c.M) * toHz(c.Fin()) / int64(c.N))
}

// Fout returns the PLL output frequency, Fcco / (2 x P).
func (c *PLLConfig) Fout() physic.Frequency {
	return fromHz(toHz(c.Fcco()) / (2 * int64(c.P)))
}

// Validate checks the PLL constraints.
func (c *PLLConfig) Validate() error {
	for _, d := range []struct {
		name string
		v    int
	}{{"N", c.N}, {"M", c.M}, {"P", c.P}} {
		if d.v < 1 {
			return &ConstraintError{Kind: DividerOutOfRange, Clock: PLL + ID("."+d.name), Value: int64(d.v), Min: 1, Max: MaxDivider}
		}
	}
	if f := c.Fref(); f < FrefMin || f > FrefMax {
		return &ConstraintError{Kind: RefFrequencyOutOfRange, Clock: PLL, Value: toHz(f), Min: toHz(FrefMin), Max: toHz(FrefMax)}
	}
	if f := c.Fcco(); f < FccoMin || f > FccoMax {
		return &ConstraintError{Kind: FccoOutOfRange, Clock: PLL, Value: toHz(f), Min: toHz(FccoMin), Max: toHz(FccoMax)}
	}
	return nil
}

func (c *PLLConfig) String() string {
	return fmt.Sprintf("%s: %s N=%d M=%d P=%d Fcco=%s Fout=%s", c.Mode, c.Source, c.N, c.M, c.P, c.Fcco(), c.Fout())
}

// modeSpec is the fixed set of coefficients of a PLL mode and the policies
// that depend on it.
type modeSpec struct {
	pll PLLConfig
	// emcDivider is the EMC clock divider applied to the CPU clock.
	emcDivider int
}

// modes lists the coefficients of every supported mode.
//
// The 220MHz mode runs from the internal FRO, the 180MHz mode from CLKIN.
// The encoded values come from the LPC546xx vendor clock tables.
var modes = map[PLLMode]modeSpec{
	Mode220MHz: {
		pll: PLLConfig{
			Mode:   Mode220MHz,
			Source: InternalOscillator(FRO12MHz),
			N:      3, M: 55, P: 1,
			NDEC: 1, MDEC: 13243, PDEC: 98,
			SELI: 34, SELP: 31, SELR: 0,
		},
		emcDivider: 3,
	},
	Mode180MHz: {
		pll: PLLConfig{
			Mode:   Mode180MHz,
			Source: ExternalClockIn(12 * physic.MegaHertz),
			N:      1, M: 15, P: 1,
			NDEC: 770, MDEC: 8191, PDEC: 98,
			SELI: 32, SELP: 16, SELR: 0,
		},
		emcDivider: 2,
	},
}

// SelectPLLMode returns the validated PLL configuration of mode.
func SelectPLLMode(mode PLLMode) (PLLConfig, error) {
	s, ok := modes[mode]
	if !ok {
		return PLLConfig{}, fmt.Errorf("%w %s", ErrUnknownMode, mode)
	}
	c := s.pll
	if err := c.Validate(); err != nil {
		return PLLConfig{}, err
	}
	logf("clock: %s", &c)
	return c, nil
}
