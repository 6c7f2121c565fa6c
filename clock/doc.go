// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clock models the LPC546xx clock tree as configured on the
// LPCXpresso-LPC54628 board.
//
// The model is evaluated once, before any hardware is touched. A PLL
// operating point is picked among a small set of named modes, validated
// against the PLL constraints, and every bus and peripheral clock is derived
// from it root to leaf:
//
//	fro12m ──────────────┬─ flexcomm0
//	(clkin) ─ pll ─ main │  flexcomm2
//	                 ├─ ahb ─ cpu ─ emc
//	                 │    ├─ systick
//	                 │    └─ frg
//	                 └─ sdmmc
//
// Use build tag periph_lpcxpresso_debug to log every derivation.
//
// # PLL
//
// Notation used by the datasheet and kept here:
//
//	Fin  = input of the PLL
//	N    = pre-divider
//	M    = feedback divider, the multiplier
//	P    = post-divider; an extra divide by 2 is in the post-divider path
//	Fref = Fin / N, must be within [4kHz, 25MHz]
//	Fcco = 2 x M x Fin / N, must be within [275MHz, 550MHz]
//	Fout = Fcco / (2 x P)
//
// # Datasheet
//
// https://www.nxp.com/docs/en/user-guide/UM10912.pdf
package clock
