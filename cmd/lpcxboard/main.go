// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lpcxboard prints the clock tree and pin function table of a
// LPCXpresso-LPC54628 board configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func printErr(w io.Writer, color bool, err error) {
	if color {
		fmt.Fprintf(w, "\x1b[31mlpcxboard: %s\x1b[0m\n", err)
		return
	}
	fmt.Fprintf(w, "lpcxboard: %s\n", err)
}

func main() {
	stdout := colorable.NewColorableStdout()
	stderr := colorable.NewColorableStderr()
	cmd := newRootCmd(stdout)
	if err := cmd.Execute(); err != nil {
		printErr(stderr, isatty.IsTerminal(os.Stderr.Fd()), err)
		os.Exit(1)
	}
}
