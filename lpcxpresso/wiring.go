// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// LPCXpresso-LPC54628 wiring.

package lpcxpresso

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/lpcxpresso/v3/pinmux"
)

// Board pins.
var (
	// USART0 connects to the serial bridge and is used as the console.
	USART0_RXD = pinmux.ByName("P0.29") // BRIDGE_UART_RXD
	USART0_TXD = pinmux.ByName("P0.30") // BRIDGE_UART_TXD

	// The touch screen controller is on I2C2.
	I2C2_SDA = pinmux.ByName("P3.23")
	I2C2_SCL = pinmux.ByName("P3.24")

	SD_CARD_DET_N = pinmux.ByName("P2.10")
	SD_D0         = pinmux.ByName("P2.6")
	SD_D1         = pinmux.ByName("P2.7")
	SD_D2         = pinmux.ByName("P2.8")
	SD_D3         = pinmux.ByName("P2.9")
	SD_CLK        = pinmux.ByName("P2.3")
	SD_CMD        = pinmux.ByName("P2.4")
	SD_POW_EN     = pinmux.ByName("P2.5")
	SD_WR_PRT     = pinmux.ByName("P3.15") // SD_WPn

	// LCD pins have no alternative except VD0 to VD3. VD0 to VD2 are not
	// used on this board.
	LCD_VD3 = pinmux.ByName("P2.21")

	// User LEDs, lit when the pin is low.
	LED_D9  = pinmux.ByName("P2.2")
	LED_D11 = pinmux.ByName("P3.3")
	LED_D12 = pinmux.ByName("P3.14")

	// Buttons, low when pressed. SW2 to SW4 select the ISP boot mode and
	// share their pins with the SDRAM data lines EMC_D4, EMC_D3 and EMC_D2.
	SW2_ISP2 = pinmux.ByName("P0.6")
	SW3_ISP1 = pinmux.ByName("P0.5")
	SW4_ISP0 = pinmux.ByName("P0.4")
	SW5_USER = pinmux.ByName("P1.1")

	EMC_D0 = pinmux.ByName("P0.2")
	EMC_D1 = pinmux.ByName("P0.3")
	EMC_D2 = pinmux.ByName("P0.4")
	EMC_D3 = pinmux.ByName("P0.5")
	EMC_D4 = pinmux.ByName("P0.6")
	EMC_D5 = pinmux.ByName("P0.7")
	EMC_D6 = pinmux.ByName("P0.8")
	EMC_D7 = pinmux.ByName("P0.9")
)

// wire describes one signal of the board and the pins that can carry it, the
// wired one first.
type wire struct {
	sig  pinmux.Signal
	pins []*pinmux.Pin
}

func sig(name string, f pinmux.Feature, fn string, a pinmux.Attr, pins ...*pinmux.Pin) wire {
	return wire{sig: pinmux.Signal{Name: name, Feature: f, Func: pin.Func(fn), Attr: a}, pins: pins}
}

func i2c(name string, fn string, p *pinmux.Pin) wire {
	w := sig(name, pinmux.TouchI2C, fn, pinmux.Attr{FilterOff: true}, p)
	w.sig.I2C = true
	return w
}

var (
	noAttr    = pinmux.Attr{}
	filterOff = pinmux.Attr{FilterOff: true}
	input     = pinmux.Attr{Pull: gpio.Float}
)

// wiring lists every signal of the board. Order is significant: it is the
// resolution order, so the first claimant of a pin is reported first.
//
// EMC data lines D8 and above, address and control lines are not listed:
// they do not share a pin with any other board function.
var wiring = []wire{
	sig("USART0_RXD", pinmux.Console, "FC0_RXD_SDA_MOSI", filterOff, USART0_RXD),
	sig("USART0_TXD", pinmux.Console, "FC0_TXD_SCL_MISO", filterOff, USART0_TXD),

	i2c("I2C2_SCL", "FC2_RTS_SCL_SSEL1", I2C2_SCL),
	i2c("I2C2_SDA", "FC2_CTS_SDA_SSEL0", I2C2_SDA),

	sig("SD_CARD_DET_N", pinmux.SDMMC, "SD_CARD_DET_N", noAttr, SD_CARD_DET_N),
	sig("SD_D0", pinmux.SDMMC, "SD_D0", noAttr, SD_D0),
	sig("SD_D1", pinmux.SDMMC, "SD_D1", noAttr, SD_D1),
	sig("SD_D2", pinmux.SDMMC, "SD_D2", noAttr, SD_D2),
	sig("SD_D3", pinmux.SDMMC, "SD_D3", noAttr, SD_D3),
	sig("SD_CLK", pinmux.SDMMC, "SD_CLK", noAttr, SD_CLK, EMC_D5),
	sig("SD_CMD", pinmux.SDMMC, "SD_CMD", noAttr, SD_CMD, EMC_D6),
	sig("SD_POW_EN", pinmux.SDMMC, "SD_POW_EN", noAttr, SD_POW_EN, EMC_D7),
	// TODO: confirm SD_WR_PRT against the schematic; the vendor header
	// annotates it with P2.15, the schematic net list with P3.15.
	sig("SD_WR_PRT", pinmux.SDMMC, "SD_WR_PRT", noAttr, SD_WR_PRT, pinmux.ByName("P2.15")),

	sig("LCD_VD3", pinmux.LCD, "LCD_VD3", noAttr, LCD_VD3),

	sig("D9", pinmux.UserLEDs, "GPIO", noAttr, LED_D9),
	sig("D11", pinmux.UserLEDs, "GPIO", noAttr, LED_D11),
	sig("D12", pinmux.UserLEDs, "GPIO", noAttr, LED_D12),

	sig("SW5", pinmux.UserButton, "GPIO", input, SW5_USER),

	sig("EMC_D0", pinmux.EMCSDRAM, "EMC_D0", filterOff, EMC_D0),
	sig("EMC_D1", pinmux.EMCSDRAM, "EMC_D1", filterOff, EMC_D1),
	sig("EMC_D2", pinmux.EMCSDRAM, "EMC_D2", filterOff, EMC_D2),
	sig("EMC_D3", pinmux.EMCSDRAM, "EMC_D3", filterOff, EMC_D3),
	sig("EMC_D4", pinmux.EMCSDRAM, "EMC_D4", filterOff, EMC_D4),
	sig("EMC_D5", pinmux.EMCSDRAM, "EMC_D5", filterOff, EMC_D5),
	sig("EMC_D6", pinmux.EMCSDRAM, "EMC_D6", filterOff, EMC_D6),
	sig("EMC_D7", pinmux.EMCSDRAM, "EMC_D7", filterOff, EMC_D7),

	sig("SW2", pinmux.BootSwitches, "GPIO", input, SW2_ISP2),
	sig("SW3", pinmux.BootSwitches, "GPIO", input, SW3_ISP1),
	sig("SW4", pinmux.BootSwitches, "GPIO", input, SW4_ISP0),
}

// Wiring returns a registry holding every signal of the board.
func Wiring() *pinmux.Registry {
	r := pinmux.NewRegistry()
	for _, w := range wiring {
		r.MustRegister(w.sig, w.pins...)
	}
	return r
}
