// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package leds

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Event is an operating system life cycle or fault event.
type Event int

// Operating system events.
const (
	Started Event = iota
	HeapAllocate
	IRQsEnabled
	StackCreated
	InIRQ
	Signal
	Assertion
	Panic
)

var eventNames = [...]string{"Started", "HeapAllocate", "IRQsEnabled", "StackCreated", "InIRQ", "Signal", "Assertion", "Panic"}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// State is the requested state of one LED.
type State int8

// LED states.
const (
	Off State = iota
	On
	// NoChange leaves the LED as it is.
	NoChange
)

func (s State) String() string {
	switch s {
	case Off:
		return "OFF"
	case On:
		return "ON"
	case NoChange:
		return "NC"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pattern is the static LED encoding of an event, for D9, D11 and D12 in
// bit order.
type Pattern struct {
	// Code is the event code used by the board LED driver. Events sharing
	// a pattern share a code.
	Code int
	LEDs [3]State
}

// Apply returns cur updated by the pattern.
func (p Pattern) Apply(cur Mask) Mask {
	for i, s := range p.LEDs {
		switch s {
		case On:
			cur |= 1 << uint(i)
		case Off:
			cur &^= 1 << uint(i)
		}
	}
	return cur
}

func (p Pattern) String() string {
	return fmt.Sprintf("%d: %s %s %s", p.Code, p.LEDs[0], p.LEDs[1], p.LEDs[2])
}

// TimingKind tells how a pattern is shown over time.
type TimingKind int

// Timing kinds.
const (
	// Steady keeps the pattern until the next event.
	Steady TimingKind = iota
	// Momentary shows the pattern while the event lasts.
	Momentary
	// Flashing toggles the pattern periodically.
	Flashing
)

// Timing is the time behavior the LED driver applies to a pattern.
type Timing struct {
	Kind TimingKind
	// Rate is the flashing frequency, only set for Flashing.
	Rate physic.Frequency
}

// Period returns the duration of one on/off cycle, 0 when not flashing.
func (t Timing) Period() time.Duration {
	if t.Kind != Flashing || t.Rate == 0 {
		return 0
	}
	return t.Rate.Period()
}

// Toggle returns the interval between two toggles, 0 when not flashing.
func (t Timing) Toggle() time.Duration {
	return t.Period() / 2
}

// PanicRate is the flashing rate after a crash.
const PanicRate = 2 * physic.Hertz

var (
	momentary = Pattern{Code: 4, LEDs: [3]State{NoChange, NoChange, On}}

	patterns = map[Event]Pattern{
		Started:      {Code: 0, LEDs: [3]State{Off, Off, Off}},
		HeapAllocate: {Code: 1, LEDs: [3]State{On, Off, Off}},
		IRQsEnabled:  {Code: 2, LEDs: [3]State{Off, On, Off}},
		StackCreated: {Code: 3, LEDs: [3]State{Off, Off, Off}},
		InIRQ:        momentary,
		Signal:       momentary,
		Assertion:    momentary,
		Panic:        momentary,
	}
)

// ErrUnknownEvent is returned for an event without encoding.
var ErrUnknownEvent = errors.New("leds: unknown event")

// Encode returns the static LED pattern of ev.
func Encode(ev Event) (Pattern, error) {
	p, ok := patterns[ev]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %s", ErrUnknownEvent, ev)
	}
	return p, nil
}

// Policy returns how the pattern of ev is shown over time.
func Policy(ev Event) Timing {
	switch ev {
	case InIRQ, Signal, Assertion:
		return Timing{Kind: Momentary}
	case Panic:
		return Timing{Kind: Flashing, Rate: PanicRate}
	default:
		return Timing{Kind: Steady}
	}
}
