// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package leds contains the LED and button bit index tables and the OS event
// LED encoding.
//
// Indices are contiguous from 0 and their order is significant. When the
// operating system reserves one LED to report its state, that LED is removed
// from the user table but keeps its index and bit for the event encoder.
//
// The event encoder only describes static patterns. Blinking, such as the
// 2Hz panic flashing, is a Timing the LED driver applies.
package leds
