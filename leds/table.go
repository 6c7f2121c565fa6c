// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package leds

import "fmt"

// Mask is a set of bits, one per table entry.
type Mask uint32

func (m Mask) String() string {
	return fmt.Sprintf("0b%03b", uint32(m))
}

// Table maps names to sequential bit indices.
type Table struct {
	names    []string
	reserved string
}

// Assign returns the table of names, indexed in order from 0.
//
// When reserveLast is set the last name is reserved for the operating system:
// it is excluded from the user view and Len is reduced by one, but its index
// and bit stay available through Reserved.
func Assign(names []string, reserveLast bool) *Table {
	t := &Table{names: append([]string(nil), names...)}
	if reserveLast && len(t.names) != 0 {
		t.reserved = t.names[len(t.names)-1]
		t.names = t.names[:len(t.names)-1]
	}
	return t
}

// Len returns the number of user-visible entries.
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns the user-visible entries in index order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Index returns the index of the user-visible entry name.
func (t *Table) Index(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Bit returns the bit of the user-visible entry name.
func (t *Table) Bit(name string) (Mask, bool) {
	i, ok := t.Index(name)
	if !ok {
		return 0, false
	}
	return 1 << uint(i), true
}

// All returns the union of the bits of every user-visible entry.
func (t *Table) All() Mask {
	var m Mask
	for i := range t.names {
		m |= 1 << uint(i)
	}
	return m
}

// Reserved returns the entry reserved for the operating system, its index and
// its bit.
func (t *Table) Reserved() (string, int, Mask, bool) {
	if t.reserved == "" {
		return "", 0, 0, false
	}
	i := len(t.names)
	return t.reserved, i, 1 << uint(i), true
}
