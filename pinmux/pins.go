// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// This file contains the pin mapping information of the LPC54628 pins wired
// on the LPCXpresso board.

package pinmux

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"periph.io/x/conn/v3/pin"
)

// GPIO is function 0, available on every pin.
const GPIO pin.Func = "GPIO"

// Type is the IOCON pin type. It decides which electrical attributes a pin
// has.
type Type string

// IOCON pin types.
const (
	// TypeD is a digital pin with pull-up/down and open drain.
	TypeD Type = "D"
	// TypeA is a digital pin with an analog alternative.
	TypeA Type = "A"
	// TypeI is an I²C true open drain pin with glitch filter and drive
	// selection.
	TypeI Type = "I"
)

// Pin is a LPC54628 package pin, PORT.PIN.
//
// Pin implements pin.Pin.
type Pin struct {
	name    string
	port    int
	num     int
	typ     Type
	altFunc [7]pin.Func
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin. Pins are numbered 32 per port.
func (p *Pin) Number() int {
	return p.port*32 + p.num
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return ""
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Port returns the GPIO port.
func (p *Pin) Port() int {
	return p.port
}

// Type returns the IOCON type of the pin.
func (p *Pin) Type() Type {
	return p.typ
}

// SupportedFuncs returns GPIO followed by the alternate functions of the pin.
func (p *Pin) SupportedFuncs() []pin.Func {
	out := []pin.Func{GPIO}
	for _, f := range p.altFunc {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Alt returns the IOCON FUNC value selecting f on this pin.
func (p *Pin) Alt(f pin.Func) (int, bool) {
	if f == GPIO {
		return 0, true
	}
	for i, a := range p.altFunc {
		if a != "" && a == f {
			return i + 1, true
		}
	}
	return 0, false
}

var _ pin.Pin = &Pin{}

// Pins is the table of known pins, by name such as "P0.4".
//
// The pin alternate functions come from the LPC546xx datasheet pin
// description. Only the pins wired on the LPCXpresso-LPC54628 are listed,
// and only the alternate functions this board can route on them. GPIO,
// available on all pins, is omitted.
var Pins map[string]*Pin

//go:embed LPC54628_pins.json
var lpc54628PinsSpec []byte

type serializedPinSpec struct {
	Name      string
	Type      Type
	Function1 pin.Func
	Function2 pin.Func
	Function3 pin.Func
	Function4 pin.Func
	Function5 pin.Func
	Function6 pin.Func
	Function7 pin.Func
}

func getSerializedPinSpecs() ([]serializedPinSpec, error) {
	var serializedPins []serializedPinSpec
	err := json.Unmarshal(lpc54628PinsSpec, &serializedPins)
	return serializedPins, err
}

func getAltFunc(s serializedPinSpec) [7]pin.Func {
	return [7]pin.Func{
		s.Function1,
		s.Function2,
		s.Function3,
		s.Function4,
		s.Function5,
		s.Function6,
		s.Function7}
}

// parsePinName splits "P2.10" into port 2 and pin 10.
func parsePinName(name string) (int, int, error) {
	if !strings.HasPrefix(name, "P") {
		return 0, 0, fmt.Errorf("pinmux: invalid pin name %q", name)
	}
	parts := strings.SplitN(name[1:], ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("pinmux: invalid pin name %q", name)
	}
	port, err := strconv.Atoi(parts[0])
	if err != nil || port < 0 || port > 5 {
		return 0, 0, fmt.Errorf("pinmux: invalid port in %q", name)
	}
	num, err := strconv.Atoi(parts[1])
	if err != nil || num < 0 || num > 31 {
		return 0, 0, fmt.Errorf("pinmux: invalid pin number in %q", name)
	}
	return port, num, nil
}

// mapPins decodes the embedded table.
func mapPins() (map[string]*Pin, error) {
	specs, err := getSerializedPinSpecs()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Pin, len(specs))
	for _, s := range specs {
		port, num, err := parsePinName(s.Name)
		if err != nil {
			return nil, err
		}
		switch s.Type {
		case TypeD, TypeA, TypeI:
		default:
			return nil, fmt.Errorf("pinmux: %s: invalid type %q", s.Name, s.Type)
		}
		if _, ok := out[s.Name]; ok {
			return nil, fmt.Errorf("pinmux: %s listed twice", s.Name)
		}
		out[s.Name] = &Pin{name: s.Name, port: port, num: num, typ: s.Type, altFunc: getAltFunc(s)}
	}
	return out, nil
}

// ByName returns the pin name, or nil.
func ByName(name string) *Pin {
	return Pins[name]
}

// All returns every known pin ordered by number.
func All() []*Pin {
	out := maps.Values(Pins)
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

func init() {
	var err error
	if Pins, err = mapPins(); err != nil {
		panic(err)
	}
}
