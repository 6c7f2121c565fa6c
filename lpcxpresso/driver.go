// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lpcxpresso

import (
	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/conn/v3/pin/pinreg"
	"periph.io/x/lpcxpresso/v3/clock"
)

// Init calls driverreg.Init() and returns it as-is.
//
// The only difference is that by calling lpcxpresso.Init(), you are
// guaranteed to have the board driver loaded.
func Init() (*driverreg.State, error) {
	return driverreg.Init()
}

// registerHeaders registers the board signal groups. Each group is numbered
// in the order of the board's index tables, so pinreg.Position of LED_D9 is
// ("LEDS", 1).
func registerHeaders() error {
	for _, h := range []struct {
		name string
		pins [][]pin.Pin
	}{
		{"CONSOLE", [][]pin.Pin{{USART0_RXD, USART0_TXD}}},
		{"TOUCH", [][]pin.Pin{{I2C2_SDA, I2C2_SCL}}},
		{"SD", [][]pin.Pin{
			{SD_D0, SD_D1, SD_D2, SD_D3},
			{SD_CLK, SD_CMD, SD_CARD_DET_N, SD_POW_EN, SD_WR_PRT},
		}},
		{"LEDS", [][]pin.Pin{{LED_D9}, {LED_D11}, {LED_D12}}},
		{"BUTTONS", [][]pin.Pin{{SW5_USER}, {SW2_ISP2}, {SW3_ISP1}, {SW4_ISP0}}},
	} {
		if err := pinreg.Register(h.name, h.pins); err != nil {
			return err
		}
	}
	return nil
}

// driver implements driver.Impl.
type driver struct {
}

func (d *driver) String() string {
	return BoardName
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

// Init evaluates the stock configuration, which checks the embedded pin
// table and both clock modes, and registers the signal groups.
func (d *driver) Init() (bool, error) {
	for _, m := range clock.Modes() {
		cfg := DefaultConfig()
		cfg.Mode = m
		if _, err := Build(cfg); err != nil {
			return true, err
		}
	}
	return true, registerHeaders()
}

func init() {
	driverreg.MustRegister(&drv)
}

var drv driver
