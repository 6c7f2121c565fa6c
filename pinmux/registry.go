// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmux

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"
)

var (
	// ErrUnknownSignal is returned for a signal that was not registered.
	ErrUnknownSignal = errors.New("pinmux: unknown signal")
	// ErrUnknownPin is returned for a pin that is not a candidate.
	ErrUnknownPin = errors.New("pinmux: unknown pin")
	// ErrNoFunction is returned when a pin cannot carry a signal.
	ErrNoFunction = errors.New("pinmux: function not available")
	// ErrPinAlreadyClaimed is wrapped by every *ConflictError.
	ErrPinAlreadyClaimed = errors.New("pinmux: pin already claimed")
)

// ConflictError is returned when two enabled signals claim the same pin.
type ConflictError struct {
	Pin    *Pin
	First  Signal
	Second Signal
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("pinmux: %s claimed by %s and %s", e.Pin, e.First, e.Second)
}

// Unwrap returns ErrPinAlreadyClaimed.
func (e *ConflictError) Unwrap() error {
	return ErrPinAlreadyClaimed
}

type entry struct {
	sig        Signal
	candidates []*Pin
	// route is the index of the candidate the signal is wired to.
	route int
}

// Registry records which pins every signal of a board may use.
//
// A Registry is built once and is not safe for concurrent mutation.
type Registry struct {
	entries []*entry
	byName  map[string]*entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*entry{}}
}

// Register records that s is realized on one of candidates.
//
// The first candidate is the pin the board routes the signal to; use Route
// to select another. Every candidate must be able to carry s.Func.
func (r *Registry) Register(s Signal, candidates ...*Pin) error {
	if s.Name == "" {
		return errors.New("pinmux: signal without name")
	}
	if bits.OnesCount32(uint32(s.Feature)) != 1 {
		return fmt.Errorf("pinmux: %s must belong to exactly one feature, got %s", s.Name, s.Feature)
	}
	if _, ok := r.byName[s.Name]; ok {
		return fmt.Errorf("pinmux: %s registered twice", s.Name)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("pinmux: %s has no candidate pin", s.Name)
	}
	for _, p := range candidates {
		if p == nil {
			return fmt.Errorf("%w for %s", ErrUnknownPin, s.Name)
		}
		if _, ok := p.Alt(s.Func); !ok {
			return fmt.Errorf("%w: %s cannot carry %s for %s", ErrNoFunction, p, s.Func, s.Name)
		}
	}
	e := &entry{sig: s, candidates: append([]*Pin(nil), candidates...)}
	r.entries = append(r.entries, e)
	r.byName[s.Name] = e
	logf("pinmux: register %s on %v", s, candidates)
	return nil
}

// MustRegister calls Register and panics on error.
//
// It is meant for static board wiring tables.
func (r *Registry) MustRegister(s Signal, candidates ...*Pin) {
	if err := r.Register(s, candidates...); err != nil {
		panic(err)
	}
}

// Route selects which candidate pin the signal name is wired to.
func (r *Registry) Route(name string, p *Pin) error {
	e, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownSignal, name)
	}
	i := slices.Index(e.candidates, p)
	if i < 0 {
		return fmt.Errorf("%w: %s is not a candidate of %s", ErrUnknownPin, p, name)
	}
	e.route = i
	return nil
}

// Signal returns the registered signal name.
func (r *Registry) Signal(name string) (Signal, bool) {
	e, ok := r.byName[name]
	if !ok {
		return Signal{}, false
	}
	return e.sig, true
}

// Signals returns every signal in registration order.
func (r *Registry) Signals() []Signal {
	out := make([]Signal, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.sig)
	}
	return out
}

// Candidates returns the candidate pins of the signal name, the routed one
// first.
func (r *Registry) Candidates(name string) ([]*Pin, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSignal, name)
	}
	out := []*Pin{e.candidates[e.route]}
	for i, p := range e.candidates {
		if i != e.route {
			out = append(out, p)
		}
	}
	return out, nil
}

// Resolve claims the routed pin of every signal of the enabled features.
//
// Conflicting configurations are rejected: if two signals claim one pin a
// *ConflictError naming both is returned and no Map is produced.
func (r *Registry) Resolve(enabled Feature) (*Map, error) {
	m := &Map{
		features: enabled,
		bySignal: map[string]int{},
		byPin:    map[*Pin]int{},
	}
	for _, e := range r.entries {
		if !enabled.Has(e.sig.Feature) {
			continue
		}
		p := e.candidates[e.route]
		if i, ok := m.byPin[p]; ok {
			return nil, &ConflictError{Pin: p, First: m.assignments[i].Signal, Second: e.sig}
		}
		m.byPin[p] = len(m.assignments)
		m.bySignal[e.sig.Name] = len(m.assignments)
		m.assignments = append(m.assignments, Assignment{Signal: e.sig, Pin: p})
		logf("pinmux: %s claims %s", e.sig, p)
	}
	return m, nil
}

// Encode returns the pin function code of the signal name on its routed pin,
// with the electrical variant selected by f.
func (r *Registry) Encode(name string, f Flags) (Code, error) {
	e, ok := r.byName[name]
	if !ok {
		return Code{}, fmt.Errorf("%w %q", ErrUnknownSignal, name)
	}
	return encode(e.sig, e.candidates[e.route], f)
}

// Assignment is a signal bound to a pin.
type Assignment struct {
	Signal Signal
	Pin    *Pin
}

// Map is the result of a successful Resolve.
type Map struct {
	features    Feature
	assignments []Assignment
	bySignal    map[string]int
	byPin       map[*Pin]int
}

// Features returns the features the map was resolved for.
func (m *Map) Features() Feature {
	return m.features
}

// Pin returns the pin claimed by the signal name.
func (m *Map) Pin(name string) (*Pin, bool) {
	i, ok := m.bySignal[name]
	if !ok {
		return nil, false
	}
	return m.assignments[i].Pin, true
}

// Owner returns the signal claiming p.
func (m *Map) Owner(p *Pin) (Signal, bool) {
	i, ok := m.byPin[p]
	if !ok {
		return Signal{}, false
	}
	return m.assignments[i].Signal, true
}

// Assignments returns every assignment in registration order.
func (m *Map) Assignments() []Assignment {
	return append([]Assignment(nil), m.assignments...)
}

// Table returns the pin function code of every assignment.
func (m *Map) Table(f Flags) ([]Code, error) {
	out := make([]Code, 0, len(m.assignments))
	for _, a := range m.assignments {
		c, err := encode(a.Signal, a.Pin, f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
