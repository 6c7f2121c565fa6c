// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lpcxpresso contains the NXP LPCXpresso-LPC54628 board logic.
//
// Build evaluates a board Config once: it selects the PLL mode, derives the
// clock tree, resolves the pin assignment of the enabled features and
// assigns the LED and button indices. Any violated clock constraint or pin
// conflict aborts the build; no partial Board is returned.
//
// ParseDefconfig reads the board options from a NuttX defconfig. Importing
// the package registers a periph driver; Init loads it, which checks the
// stock configuration in every PLL mode and registers the board signal
// groups with pinreg.
//
// # Physical
//
// https://www.nxp.com/design/microcontrollers-developer-resources/lpcxpresso-boards/lpcxpresso54628-development-board:OM13098
package lpcxpresso
