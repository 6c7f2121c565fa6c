// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pinmux assigns board signals to LPC54628 pins.
//
// Every signal is registered with the pins able to carry it. Resolving a set
// of enabled board features claims one pin per signal and fails with a
// *ConflictError when two signals need the same pin, for example the
// external memory controller data lines and the ISP boot switches which
// share P0.4 to P0.6. There is no arbitration: a conflicting configuration
// is rejected as a whole.
//
// Use build tag periph_lpcxpresso_debug to log every claim.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/LPC546XX.pdf
package pinmux
