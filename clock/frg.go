// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// FRGDiv is the fixed DIV value of the fractional rate generator.
const FRGDiv = 256

// FRGMultMax is the largest MULT value; the field is 8 bits wide.
const FRGMultMax = 255

// Fractional is a fractional rate generator setting.
//
//	Ffrg = Fin / (1 + MULT/DIV)
type Fractional struct {
	Mult int
	Freq physic.Frequency
}

func (f Fractional) String() string {
	return fmt.Sprintf("%s (MULT=%d DIV=%d)", f.Freq, f.Mult, FRGDiv)
}

// FractionalRate returns the fractional rate generator setting producing the
// highest frequency not above target out of fin:
//
//	MULT = ceil((Fin - Ffrg) * 256 / Ffrg)
//
// The generator can at most halve its input, so a target below fin/2 cannot
// be realized and ErrDividerOutOfRange is returned.
func FractionalRate(fin, target physic.Frequency) (Fractional, error) {
	in, want := toHz(fin), toHz(target)
	if in <= 0 || want <= 0 {
		return Fractional{}, &ConstraintError{Kind: DividerOutOfRange, Clock: FRG, Value: 0, Min: 0, Max: FRGMultMax}
	}
	mult := int64(0)
	if in > want {
		mult = ceilDiv((in-want)*FRGDiv, want)
	}
	if mult > FRGMultMax {
		return Fractional{}, &ConstraintError{Kind: DividerOutOfRange, Clock: FRG, Value: mult, Min: 0, Max: FRGMultMax}
	}
	f := Fractional{Mult: int(mult), Freq: fromHz(in * FRGDiv / (FRGDiv + mult))}
	logf("clock: frg %s from %s", f, fin)
	return f, nil
}
