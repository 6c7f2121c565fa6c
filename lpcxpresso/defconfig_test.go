// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpcxpresso

import (
	"errors"
	"strings"
	"testing"

	"periph.io/x/lpcxpresso/v3/clock"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

const nshDefconfig = `#
# This file is autogenerated: PLEASE DO NOT EDIT IT.
#
# CONFIG_ARCH_LEDS is not set
# CONFIG_LPC54_EMC is not set
CONFIG_ARCH="arm"
CONFIG_ARCH_BOARD="lpcxpresso-lpc54628"
CONFIG_ARCH_BUTTONS=y
CONFIG_ARCH_CHIP_LPC54628=y
CONFIG_LPC54_USART0=y
CONFIG_LPC54_I2C2_MASTER=y
CONFIG_LPC54_I2C_FAST=y # touch controller
CONFIG_LPC54_SDMMC=y
CONFIG_LPCXPRESSO_BOOT_SWITCHES=y
CONFIG_SCHED_TICKLESS=y
CONFIG_USEC_PER_TICK=1000
CONFIG_USERLED=y
`

func TestParseDefconfig(t *testing.T) {
	base := DefaultConfig()
	base.ArchLEDs = true
	cfg, err := ParseDefconfig(strings.NewReader(nshDefconfig), base)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Mode:        clock.Mode220MHz,
		Tickless:    true,
		USecPerTick: 1000,
		I2CSpeed:    pinmux.I2CFast,
		Features:    pinmux.Console | pinmux.TouchI2C | pinmux.SDMMC | pinmux.LCD | pinmux.UserLEDs | pinmux.UserButton | pinmux.BootSwitches,
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
	if _, err := Build(cfg); err != nil {
		t.Error(err)
	}
}

func TestParseDefconfig_options(t *testing.T) {
	data := []struct {
		line  string
		check func(c Config) bool
	}{
		{"CONFIG_LPCXPRESSO_180MHZ=y", func(c Config) bool { return c.Mode == clock.Mode180MHz }},
		{"# CONFIG_LPCXPRESSO_180MHZ is not set", func(c Config) bool { return c.Mode == clock.Mode220MHz }},
		{"CONFIG_LPC54_I2C_HIGH=y", func(c Config) bool { return c.I2CSpeed == pinmux.I2CHigh }},
		{"CONFIG_ARCH_LEDS=y", func(c Config) bool { return c.ArchLEDs }},
		{"CONFIG_LPC54_LCD=n", func(c Config) bool { return !c.Features.Has(pinmux.LCD) }},
		{"CONFIG_LPC54_EMC=y", func(c Config) bool { return c.Features.Has(pinmux.EMCSDRAM) }},
		{"CONFIG_USEC_PER_TICK='10000'", func(c Config) bool { return c.USecPerTick == 10000 }},
		{"CONFIG_NSH_PROMPT_STRING=\"nsh> \"", func(c Config) bool { return c == DefaultConfig() }},
		{"", func(c Config) bool { return c == DefaultConfig() }},
	}
	for i, line := range data {
		c, err := ParseDefconfig(strings.NewReader(line.line), DefaultConfig())
		if err != nil {
			t.Errorf("#%d %q: %v", i, line.line, err)
			continue
		}
		if !line.check(c) {
			t.Errorf("#%d %q: got %+v", i, line.line, c)
		}
	}
}

func TestParseDefconfig_err(t *testing.T) {
	data := []string{
		"CONFIG_USEC_PER_TICK=often",
		"CONFIG_LPC54_SDMMC=m",
		"CONFIG_SCHED_TICKLESS=yes",
		"CONFIG_ARCH_BOARD=\"unterminated",
		"CONFIG_LPC54_SDMMC y",
		"LPC54_SDMMC=y",
	}
	for i, line := range data {
		base := DefaultConfig()
		c, err := ParseDefconfig(strings.NewReader(line), base)
		if err == nil {
			t.Errorf("#%d %q: expected error", i, line)
		}
		if c != base {
			t.Errorf("#%d %q: base config modified", i, line)
		}
	}
}

func TestParseDefconfig_wrongBoard(t *testing.T) {
	_, err := ParseDefconfig(strings.NewReader(`CONFIG_ARCH_BOARD="lpcxpresso-lpc54018"`), DefaultConfig())
	if !errors.Is(err, ErrWrongBoard) {
		t.Errorf("got %v", err)
	}
}

func TestParseDefconfig_tickPeriod(t *testing.T) {
	for _, line := range []string{"CONFIG_USEC_PER_TICK=0", "CONFIG_USEC_PER_TICK=-1"} {
		base := DefaultConfig()
		c, err := ParseDefconfig(strings.NewReader(line+"\n"), base)
		if !errors.Is(err, clock.ErrUnsupportedTickPeriod) {
			t.Errorf("%q: got %v", line, err)
		}
		if c != base {
			t.Errorf("%q: base config modified", line)
		}
	}
}
