// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"periph.io/x/lpcxpresso/v3/clock"
	"periph.io/x/lpcxpresso/v3/lpcxpresso"
	"periph.io/x/lpcxpresso/v3/lpcxpresso/lpcxpressosmoketest"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

type options struct {
	mode        string
	defconfig   string
	tickless    bool
	usecPerTick int
	i2c         string
	archLEDs    bool
	features    string
	format      string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "lpcxboard",
		Short:         "Evaluate a LPCXpresso-LPC54628 board configuration",
		Long:          "Derive the clock tree and the pin function table of a LPCXpresso-LPC54628 board configuration, starting from the stock configuration, an optional NuttX defconfig and command line overrides.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			b, err := lpcxpresso.Build(cfg)
			if err != nil {
				return err
			}
			return write(out, b.Report(), opts.format)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.mode, "mode", "m", clock.Mode220MHz.String(), "PLL mode, 220MHz or 180MHz")
	f.StringVarP(&opts.defconfig, "defconfig", "c", "", "NuttX defconfig to apply before the other flags")
	f.BoolVar(&opts.tickless, "tickless", false, "tickless scheduler, no SysTick clock")
	f.IntVar(&opts.usecPerTick, "usec-per-tick", clock.DefaultUSecPerTick, "scheduler tick period in µs")
	f.StringVar(&opts.i2c, "i2c", pinmux.I2CStandard.String(), "I2C speed: standard, fast or high")
	f.BoolVar(&opts.archLEDs, "arch-leds", false, "reserve LED D12 for the operating system")
	f.StringVarP(&opts.features, "features", "f", lpcxpresso.DefaultConfig().Features.String(), "enabled board features, separated by ',' or '|'")
	f.StringVarP(&opts.format, "format", "o", "text", "output format: text, json or yaml")
	cmd.AddCommand(newSmokeTestCmd(out))
	return cmd
}

// config returns the configuration: the stock one, the defconfig if any, then
// every flag explicitly set.
func (o *options) config(cmd *cobra.Command) (lpcxpresso.Config, error) {
	cfg := lpcxpresso.DefaultConfig()
	if o.defconfig != "" {
		f, err := os.Open(o.defconfig)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = lpcxpresso.ParseDefconfig(f, cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", o.defconfig, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		m, err := clock.ParseMode(o.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	if flags.Changed("tickless") {
		cfg.Tickless = o.tickless
	}
	if flags.Changed("usec-per-tick") {
		if o.usecPerTick <= 0 {
			return cfg, &clock.ConstraintError{Kind: clock.UnsupportedTickPeriod, Clock: clock.SysTick, Value: int64(o.usecPerTick)}
		}
		cfg.USecPerTick = o.usecPerTick
	}
	if flags.Changed("i2c") {
		s, err := pinmux.ParseI2CSpeed(o.i2c)
		if err != nil {
			return cfg, err
		}
		cfg.I2CSpeed = s
	}
	if flags.Changed("arch-leds") {
		cfg.ArchLEDs = o.archLEDs
	}
	if flags.Changed("features") {
		feat, err := pinmux.ParseFeature(o.features)
		if err != nil {
			return cfg, err
		}
		cfg.Features = feat
	}
	return cfg, nil
}

func write(w io.Writer, r *lpcxpresso.Report, format string) error {
	switch format {
	case "text":
		return r.WriteText(w)
	case "json":
		return r.WriteJSON(w)
	case "yaml":
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newSmokeTestCmd(out io.Writer) *cobra.Command {
	s := &lpcxpressosmoketest.SmokeTest{Out: out}
	return &cobra.Command{
		Use:                "smoketest [-v]",
		Short:              s.Description(),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			f.SetOutput(cmd.ErrOrStderr())
			return s.Run(f, args)
		},
	}
}
