// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"periph.io/x/conn/v3/physic"
)

// ID names a clock of the tree.
type ID string

// Clocks of the LPCXpresso-LPC54628 tree.
const (
	FRO12M    ID = "fro12m"
	CLKIN     ID = "clkin"
	PLL       ID = "pll"
	Main      ID = "main"
	AHB       ID = "ahb"
	CPU       ID = "cpu"
	SysTick   ID = "systick"
	FRG       ID = "frg"
	EMC       ID = "emc"
	SDMMC     ID = "sdmmc"
	Flexcomm0 ID = "flexcomm0"
	Flexcomm2 ID = "flexcomm2"
)

// MaxDivider is the largest integer clock divider. The LPC546xx divider
// registers are 8 bits wide and divide by the programmed value plus one.
const MaxDivider = 256

// Clock is one node of the clock tree.
type Clock struct {
	ID ID
	// Parent is empty for oscillator roots.
	Parent  ID
	Divider int
	Freq    physic.Frequency
	// Max is the hardware ceiling for this clock, 0 if none applies.
	Max physic.Frequency
}

// Hz returns the clock frequency in whole Hz.
func (c Clock) Hz() int64 {
	return toHz(c.Freq)
}

func (c Clock) String() string {
	if c.Parent == "" {
		return fmt.Sprintf("%s: %s", c.ID, c.Freq)
	}
	return fmt.Sprintf("%s: %s (%s/%d)", c.ID, c.Freq, c.Parent, c.Divider)
}

// Root returns the oscillator clock for src.
func Root(id ID, src Source) Clock {
	return Clock{ID: id, Divider: 1, Freq: src.Freq}
}

// Derive returns the clock id obtained by dividing parent by divider.
//
// The result is truncated to whole Hz, as the hardware does.
func Derive(id ID, parent Clock, divider int) (Clock, error) {
	if divider < 1 || divider > MaxDivider {
		return Clock{}, &ConstraintError{Kind: DividerOutOfRange, Clock: id, Value: int64(divider), Min: 1, Max: MaxDivider}
	}
	c := Clock{
		ID:      id,
		Parent:  parent.ID,
		Divider: divider,
		Freq:    fromHz(parent.Hz() / int64(divider)),
	}
	logf("clock: %s", c)
	return c, nil
}

// DeriveMax returns the clock id obtained by dividing parent by the smallest
// divider that keeps the result at or below max.
//
// The divider is ceil(parent / max). When parent <= max the divider is 1 and
// the parent frequency passes through unchanged.
func DeriveMax(id ID, parent Clock, max physic.Frequency) (Clock, error) {
	p, m := parent.Hz(), toHz(max)
	div := int64(0)
	if p > 0 && m > 0 {
		div = ceilDiv(p, m)
	}
	if div < 1 || div > MaxDivider {
		return Clock{}, &ConstraintError{Kind: DividerOutOfRange, Clock: id, Value: div, Min: 1, Max: MaxDivider}
	}
	c, err := Derive(id, parent, int(div))
	if err != nil {
		return Clock{}, err
	}
	c.Max = max
	return c, nil
}

// checkMax verifies that c does not exceed max.
func checkMax(c Clock, max physic.Frequency) (Clock, error) {
	if c.Freq > max {
		return Clock{}, &ConstraintError{Kind: FrequencyOutOfRange, Clock: c.ID, Value: c.Hz(), Max: toHz(max)}
	}
	c.Max = max
	return c, nil
}

// ceilDiv returns ceil(a/b) for positive a and b.
func ceilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}
