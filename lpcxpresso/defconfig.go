// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpcxpresso

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"periph.io/x/lpcxpresso/v3/clock"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

// ErrWrongBoard is returned when a defconfig targets another board.
var ErrWrongBoard = errors.New("lpcxpresso: defconfig is for another board")

// notSet matches the Kconfig way of writing a disabled boolean.
var notSet = regexp.MustCompile(`^#\s*(CONFIG_\w+) is not set\s*$`)

// featureOptions maps Kconfig options to the board feature they enable.
var featureOptions = map[string]pinmux.Feature{
	"CONFIG_LPC54_USART0":             pinmux.Console,
	"CONFIG_LPC54_I2C2_MASTER":        pinmux.TouchI2C,
	"CONFIG_LPC54_SDMMC":              pinmux.SDMMC,
	"CONFIG_LPC54_LCD":                pinmux.LCD,
	"CONFIG_USERLED":                  pinmux.UserLEDs,
	"CONFIG_ARCH_BUTTONS":             pinmux.UserButton,
	"CONFIG_LPCXPRESSO_BOOT_SWITCHES": pinmux.BootSwitches,
	"CONFIG_LPC54_EMC":                pinmux.EMCSDRAM,
}

// ParseDefconfig applies the options of a NuttX defconfig read from r on top
// of base.
//
// Lines are KEY=VALUE pairs tokenized like a shell would, so quoted values
// and trailing comments are accepted. Unknown options are ignored.
func ParseDefconfig(r io.Reader, base Config) (Config, error) {
	cfg := base
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if m := notSet.FindStringSubmatch(line); m != nil {
			if err := cfg.set(m[1], "n"); err != nil {
				return base, fmt.Errorf("lpcxpresso: defconfig line %d: %w", n, err)
			}
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			return base, fmt.Errorf("lpcxpresso: defconfig line %d: %w", n, err)
		}
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != 1 {
			return base, fmt.Errorf("lpcxpresso: defconfig line %d: expected KEY=VALUE, got %q", n, line)
		}
		key, value, ok := strings.Cut(tokens[0], "=")
		if !ok || !strings.HasPrefix(key, "CONFIG_") {
			return base, fmt.Errorf("lpcxpresso: defconfig line %d: expected KEY=VALUE, got %q", n, line)
		}
		if err := cfg.set(key, value); err != nil {
			return base, fmt.Errorf("lpcxpresso: defconfig line %d: %w", n, err)
		}
	}
	if err := s.Err(); err != nil {
		return base, err
	}
	return cfg, nil
}

// set applies one Kconfig option.
func (c *Config) set(key, value string) error {
	if f, ok := featureOptions[key]; ok {
		on, err := parseBool(key, value)
		if err != nil {
			return err
		}
		if on {
			c.Features |= f
		} else {
			c.Features &^= f
		}
		return nil
	}
	switch key {
	case "CONFIG_ARCH_BOARD":
		if value != BoardName {
			return fmt.Errorf("%w: %q", ErrWrongBoard, value)
		}
	case "CONFIG_SCHED_TICKLESS":
		on, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Tickless = on
	case "CONFIG_USEC_PER_TICK":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err := checkTickPeriod(v); err != nil {
			return err
		}
		c.USecPerTick = v
	case "CONFIG_ARCH_LEDS":
		on, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.ArchLEDs = on
	case "CONFIG_LPC54_I2C_FAST", "CONFIG_LPC54_I2C_HIGH":
		on, err := parseBool(key, value)
		if err != nil {
			return err
		}
		speed := pinmux.I2CFast
		if key == "CONFIG_LPC54_I2C_HIGH" {
			speed = pinmux.I2CHigh
		}
		if on {
			c.I2CSpeed = speed
		} else if c.I2CSpeed == speed {
			c.I2CSpeed = pinmux.I2CStandard
		}
	case "CONFIG_LPCXPRESSO_180MHZ":
		on, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Mode = clock.Mode220MHz
		if on {
			c.Mode = clock.Mode180MHz
		}
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch value {
	case "y":
		return true, nil
	case "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
}
