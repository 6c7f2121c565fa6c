// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build periph_lpcxpresso_debug
// +build periph_lpcxpresso_debug

package clock

import "log"

// logf is enabled when the build tag periph_lpcxpresso_debug is specified.
func logf(fmt string, v ...interface{}) {
	log.Printf(fmt, v...)
}
