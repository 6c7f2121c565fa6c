// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// ConstraintKind identifies which clock tree rule was violated.
type ConstraintKind int

// Clock tree rules.
const (
	FccoOutOfRange ConstraintKind = iota + 1
	RefFrequencyOutOfRange
	DividerOutOfRange
	UnsupportedTickPeriod
	ReloadOutOfRange
	FrequencyOutOfRange
)

func (k ConstraintKind) String() string {
	switch k {
	case FccoOutOfRange:
		return "Fcco out of range"
	case RefFrequencyOutOfRange:
		return "reference frequency out of range"
	case DividerOutOfRange:
		return "divider out of range"
	case UnsupportedTickPeriod:
		return "unsupported tick period"
	case ReloadOutOfRange:
		return "SysTick reload out of range"
	case FrequencyOutOfRange:
		return "frequency out of range"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// ConstraintError is returned when a clock tree rule is violated.
//
// Value, Min and Max are expressed in Hz for frequency rules, as a plain
// count for divider and reload rules and in µs for the tick period rule.
type ConstraintError struct {
	Kind  ConstraintKind
	Clock ID
	Value int64
	Min   int64
	Max   int64
}

func (e *ConstraintError) Error() string {
	if e.Clock == "" {
		return "clock: " + e.Kind.String()
	}
	switch e.Kind {
	case FccoOutOfRange, RefFrequencyOutOfRange:
		return fmt.Sprintf("clock: %s: %s: %s not within [%s, %s]", e.Clock, e.Kind, fromHz(e.Value), fromHz(e.Min), fromHz(e.Max))
	case FrequencyOutOfRange:
		return fmt.Sprintf("clock: %s: %s: %s above %s", e.Clock, e.Kind, fromHz(e.Value), fromHz(e.Max))
	case UnsupportedTickPeriod:
		return fmt.Sprintf("clock: %s: %s: no divider for %dµs per tick", e.Clock, e.Kind, e.Value)
	default:
		return fmt.Sprintf("clock: %s: %s: %d not within [%d, %d]", e.Clock, e.Kind, e.Value, e.Min, e.Max)
	}
}

// Is reports whether target is a *ConstraintError of the same Kind, so that
// errors.Is(err, ErrFccoOutOfRange) works on detailed errors.
func (e *ConstraintError) Is(target error) bool {
	t, ok := target.(*ConstraintError)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrFccoOutOfRange         error = &ConstraintError{Kind: FccoOutOfRange}
	ErrRefFrequencyOutOfRange error = &ConstraintError{Kind: RefFrequencyOutOfRange}
	ErrDividerOutOfRange      error = &ConstraintError{Kind: DividerOutOfRange}
	ErrUnsupportedTickPeriod  error = &ConstraintError{Kind: UnsupportedTickPeriod}
	ErrReloadOutOfRange       error = &ConstraintError{Kind: ReloadOutOfRange}
	ErrFrequencyOutOfRange    error = &ConstraintError{Kind: FrequencyOutOfRange}

	// ErrUnknownMode is returned for a PLLMode outside the supported set.
	ErrUnknownMode = errors.New("clock: unknown PLL mode")
)

// toHz returns f in whole Hz.
func toHz(f physic.Frequency) int64 {
	return int64(f / physic.Hertz)
}

// fromHz returns hz as a physic.Frequency.
func fromHz(hz int64) physic.Frequency {
	return physic.Frequency(hz) * physic.Hertz
}
