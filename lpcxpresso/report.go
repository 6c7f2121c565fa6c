// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpcxpresso

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

// Report is a serializable summary of a Board.
type Report struct {
	Board    string      `json:"board" yaml:"board"`
	Mode     string      `json:"mode" yaml:"mode"`
	Features string      `json:"features" yaml:"features"`
	PLL      PLLReport   `json:"pll" yaml:"pll"`
	Clocks   []ClockLine `json:"clocks" yaml:"clocks"`
	// SysTickReload is nil for a tickless scheduler.
	SysTickReload *uint32   `json:"systick_reload,omitempty" yaml:"systick_reload,omitempty"`
	Pins          []PinLine `json:"pins" yaml:"pins"`
	LEDs          []string  `json:"leds" yaml:"leds"`
	ReservedLED   string    `json:"reserved_led,omitempty" yaml:"reserved_led,omitempty"`
	Buttons       []string  `json:"buttons" yaml:"buttons"`
}

// PLLReport is the PLL operating point.
type PLLReport struct {
	Source string `json:"source" yaml:"source"`
	N      int    `json:"n" yaml:"n"`
	M      int    `json:"m" yaml:"m"`
	P      int    `json:"p" yaml:"p"`
	NDEC   uint32 `json:"ndec" yaml:"ndec"`
	MDEC   uint32 `json:"mdec" yaml:"mdec"`
	PDEC   uint32 `json:"pdec" yaml:"pdec"`
	SELI   uint32 `json:"seli" yaml:"seli"`
	SELP   uint32 `json:"selp" yaml:"selp"`
	SELR   uint32 `json:"selr" yaml:"selr"`
	Fcco   int64  `json:"fcco_hz" yaml:"fcco_hz"`
	Fout   int64  `json:"fout_hz" yaml:"fout_hz"`
}

// ClockLine is one clock of the tree.
type ClockLine struct {
	Name    string `json:"name" yaml:"name"`
	Parent  string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Divider int    `json:"divider" yaml:"divider"`
	Hz      int64  `json:"hz" yaml:"hz"`
}

// PinLine is one pin function code.
type PinLine struct {
	Signal string `json:"signal" yaml:"signal"`
	Pin    string `json:"pin" yaml:"pin"`
	Func   string `json:"func" yaml:"func"`
	Alt    int    `json:"alt" yaml:"alt"`
	IOCON  uint32 `json:"iocon" yaml:"iocon"`
}

func hz(f physic.Frequency) int64 {
	return int64(f / physic.Hertz)
}

// Report returns the summary of b.
func (b *Board) Report() *Report {
	r := &Report{
		Board:    BoardName,
		Mode:     b.Config.Mode.String(),
		Features: b.Config.Features.String(),
		PLL: PLLReport{
			Source: b.PLL.Source.String(),
			N:      b.PLL.N,
			M:      b.PLL.M,
			P:      b.PLL.P,
			NDEC:   b.PLL.NDEC,
			MDEC:   b.PLL.MDEC,
			PDEC:   b.PLL.PDEC,
			SELI:   b.PLL.SELI,
			SELP:   b.PLL.SELP,
			SELR:   b.PLL.SELR,
			Fcco:   hz(b.PLL.Fcco()),
			Fout:   hz(b.PLL.Fout()),
		},
		LEDs:    b.LEDs.Names(),
		Buttons: b.Buttons.Names(),
	}
	for _, c := range b.Clocks.Clocks() {
		r.Clocks = append(r.Clocks, ClockLine{Name: string(c.ID), Parent: string(c.Parent), Divider: c.Divider, Hz: c.Hz()})
	}
	if v, ok := b.Clocks.SysTickReload(); ok {
		r.SysTickReload = &v
	}
	for i := range b.Codes {
		c := &b.Codes[i]
		r.Pins = append(r.Pins, PinLine{Signal: c.Signal, Pin: c.Pin.Name(), Func: string(c.Func), Alt: c.Alt, IOCON: c.IOCON()})
	}
	if name, _, _, ok := b.LEDs.Reserved(); ok {
		r.ReservedLED = name
	}
	return r
}

// WriteText writes r as aligned plain text.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "board:\t%s\n", r.Board)
	fmt.Fprintf(tw, "mode:\t%s\n", r.Mode)
	fmt.Fprintf(tw, "features:\t%s\n", r.Features)
	p := &r.PLL
	fmt.Fprintf(tw, "pll:\t%s N=%d M=%d P=%d NDEC=%d MDEC=%d PDEC=%d SELI=%d SELP=%d SELR=%d\n",
		p.Source, p.N, p.M, p.P, p.NDEC, p.MDEC, p.PDEC, p.SELI, p.SELP, p.SELR)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "clock\tparent\tdiv\tHz")
	for _, c := range r.Clocks {
		parent := c.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", c.Name, parent, c.Divider, c.Hz)
	}
	if r.SysTickReload != nil {
		fmt.Fprintf(tw, "systick reload:\t%d\n", *r.SysTickReload)
	} else {
		fmt.Fprintln(tw, "systick reload:\ttickless")
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "signal\tpin\tfunc\talt\tIOCON")
	for _, l := range r.Pins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t0x%03X\n", l.Signal, l.Pin, l.Func, l.Alt, l.IOCON)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "leds:\t%v\n", r.LEDs)
	if r.ReservedLED != "" {
		fmt.Fprintf(tw, "reserved led:\t%s\n", r.ReservedLED)
	}
	fmt.Fprintf(tw, "buttons:\t%v\n", r.Buttons)
	return tw.Flush()
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(r)
}

// WriteYAML writes r as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r); err != nil {
		return err
	}
	return e.Close()
}
