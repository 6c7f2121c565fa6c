// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Board clock constants.
const (
	// AHBDivider is the AHB clock divider; the CPU runs at the main clock.
	AHBDivider = 1
	// FRGMax is the highest fractional rate generator output.
	FRGMax = 48 * physic.MegaHertz
	// EMCMax is the highest external memory controller clock.
	EMCMax = 100 * physic.MegaHertz
	// SDMMCMax is the highest SD/MMC function clock.
	SDMMCMax = 50 * physic.MegaHertz
	// DefaultUSecPerTick is the scheduler tick period used when none is
	// configured.
	DefaultUSecPerTick = 10000
	// MaxReload is the largest SysTick reload value plus one.
	MaxReload = 1 << 24
)

// sysTickDividers lists the SysTick function clock divider per tick period
// in µs.
//
// The reload value should be as large as possible while staying below 2^24:
//
//	SYSTICKDIV > Fmainclk / CLK_TCK / 2^24
var sysTickDividers = map[int]int{
	10000: 1,
}

// Features selects the optional parts of the tree.
type Features struct {
	// Tickless selects a scheduler that takes its time base from another
	// timer; no SysTick clock is derived.
	Tickless bool
	// USecPerTick is the scheduler tick period. 0 means DefaultUSecPerTick.
	USecPerTick int
}

// TickPeriod returns the tick period in µs.
func (f *Features) TickPeriod() int {
	if f.USecPerTick == 0 {
		return DefaultUSecPerTick
	}
	return f.USecPerTick
}

// TicksPerSecond returns the number of scheduler ticks per second.
func (f *Features) TicksPerSecond() int {
	return 1000000 / f.TickPeriod()
}

// Tree is an evaluated clock tree. Clocks are kept in evaluation order, root
// to leaf.
type Tree struct {
	PLL PLLConfig

	clocks []Clock
	byID   map[ID]int
	reload uint32
}

// BuildTree derives every clock of the board from pll.
//
// It returns the first violated constraint and no tree in that case.
func BuildTree(pll PLLConfig, f Features) (*Tree, error) {
	if err := pll.Validate(); err != nil {
		return nil, err
	}
	spec, ok := modes[pll.Mode]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownMode, pll.Mode)
	}
	t := &Tree{PLL: pll, byID: map[ID]int{}}

	fro := t.add(Root(FRO12M, InternalOscillator(FRO12MHz)))
	in := fro
	if pll.Source.Kind == ExternalClockInSource {
		in = t.add(Root(CLKIN, pll.Source))
	}
	out := t.add(Clock{ID: PLL, Parent: in.ID, Divider: 1, Freq: pll.Fout()})
	main := t.add(Clock{ID: Main, Parent: out.ID, Divider: 1, Freq: out.Freq})

	ahb, err := Derive(AHB, main, AHBDivider)
	if err != nil {
		return nil, err
	}
	t.add(ahb)
	cpu, err := Derive(CPU, ahb, 1)
	if err != nil {
		return nil, err
	}
	t.add(cpu)

	if !f.Tickless {
		div, ok := sysTickDividers[f.TickPeriod()]
		if !ok {
			return nil, &ConstraintError{Kind: UnsupportedTickPeriod, Clock: SysTick, Value: int64(f.TickPeriod())}
		}
		st, err := Derive(SysTick, ahb, div)
		if err != nil {
			return nil, err
		}
		if t.reload, err = SysTickReload(st.Freq, f.TicksPerSecond()); err != nil {
			return nil, err
		}
		t.add(st)
	}

	steps := []func() (Clock, error){
		func() (Clock, error) { return DeriveMax(FRG, ahb, FRGMax) },
		func() (Clock, error) {
			c, err := Derive(EMC, cpu, spec.emcDivider)
			if err != nil {
				return c, err
			}
			return checkMax(c, EMCMax)
		},
		func() (Clock, error) { return DeriveMax(SDMMC, main, SDMMCMax) },
		func() (Clock, error) { return Derive(Flexcomm0, fro, 1) },
		func() (Clock, error) { return Derive(Flexcomm2, fro, 1) },
	}
	for _, step := range steps {
		c, err := step()
		if err != nil {
			return nil, err
		}
		t.add(c)
	}
	return t, nil
}

func (t *Tree) add(c Clock) Clock {
	t.byID[c.ID] = len(t.clocks)
	t.clocks = append(t.clocks, c)
	return c
}

// Has reports whether the clock id was derived.
func (t *Tree) Has(id ID) bool {
	_, ok := t.byID[id]
	return ok
}

// Clock returns the clock id.
func (t *Tree) Clock(id ID) (Clock, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Clock{}, false
	}
	return t.clocks[i], true
}

// Frequency returns the frequency of the clock id, 0 if it was not derived.
func (t *Tree) Frequency(id ID) physic.Frequency {
	c, _ := t.Clock(id)
	return c.Freq
}

// Clocks returns every clock, root to leaf.
func (t *Tree) Clocks() []Clock {
	return append([]Clock(nil), t.clocks...)
}

// SysTickReload returns the SysTick reload value. It returns false when the
// tree was built for a tickless scheduler.
func (t *Tree) SysTickReload() (uint32, bool) {
	return t.reload, t.Has(SysTick)
}

// SysTickReload returns the reload value giving ticksPerSecond interrupts per
// second out of clk.
//
// The SysTick counter is 24 bits wide so the value must be below 2^24.
func SysTickReload(clk physic.Frequency, ticksPerSecond int) (uint32, error) {
	if ticksPerSecond <= 0 {
		return 0, &ConstraintError{Kind: UnsupportedTickPeriod, Clock: SysTick, Value: int64(ticksPerSecond)}
	}
	r := toHz(clk) / int64(ticksPerSecond)
	if r < 1 || r >= MaxReload {
		return 0, &ConstraintError{Kind: ReloadOutOfRange, Clock: SysTick, Value: r, Min: 1, Max: MaxReload - 1}
	}
	return uint32(r), nil
}
