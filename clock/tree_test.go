// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func mustTree(t *testing.T, m PLLMode, f Features) *Tree {
	pll, err := SelectPLLMode(m)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := BuildTree(pll, f)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestBuildTree(t *testing.T) {
	data := []struct {
		mode   PLLMode
		cpu    int64
		emcDiv int
		emc    int64
		frg    int64
		sdDiv  int
		sd     int64
	}{
		{Mode220MHz, 220000000, 3, 73333333, 44000000, 5, 44000000},
		{Mode180MHz, 180000000, 2, 90000000, 45000000, 4, 45000000},
	}
	for _, line := range data {
		tree := mustTree(t, line.mode, Features{})
		for _, id := range []ID{Main, AHB, CPU} {
			if hz := tree.Frequency(id) / physic.Hertz; int64(hz) != line.cpu {
				t.Errorf("%s: %s = %dHz, want %d", line.mode, id, hz, line.cpu)
			}
		}
		ahb, _ := tree.Clock(AHB)
		if ahb.Divider != 1 {
			t.Errorf("%s: AHB divider %d", line.mode, ahb.Divider)
		}
		emc, _ := tree.Clock(EMC)
		if emc.Divider != line.emcDiv || emc.Hz() != line.emc {
			t.Errorf("%s: emc = %s", line.mode, emc)
		}
		if emc.Hz() != line.cpu/int64(line.emcDiv) {
			t.Errorf("%s: emc is not cpu/%d", line.mode, line.emcDiv)
		}
		if c, _ := tree.Clock(FRG); c.Hz() != line.frg || c.Freq > FRGMax {
			t.Errorf("%s: frg = %s", line.mode, c)
		}
		sd, _ := tree.Clock(SDMMC)
		if sd.Divider != line.sdDiv || sd.Hz() != line.sd {
			t.Errorf("%s: sdmmc = %s", line.mode, sd)
		}
		for _, id := range []ID{Flexcomm0, Flexcomm2} {
			if f := tree.Frequency(id); f != FRO12MHz {
				t.Errorf("%s: %s = %s", line.mode, id, f)
			}
		}
	}
}

func TestBuildTree_sources(t *testing.T) {
	tree := mustTree(t, Mode220MHz, Features{})
	if tree.Has(CLKIN) {
		t.Error("220MHz mode runs from the FRO")
	}
	if c, _ := tree.Clock(PLL); c.Parent != FRO12M {
		t.Errorf("pll parent %s", c.Parent)
	}
	tree = mustTree(t, Mode180MHz, Features{})
	if c, _ := tree.Clock(PLL); c.Parent != CLKIN {
		t.Errorf("pll parent %s", c.Parent)
	}
	if !tree.Has(FRO12M) {
		t.Error("the FRO still feeds the Flexcomm clocks")
	}
}

func TestBuildTree_rootToLeaf(t *testing.T) {
	tree := mustTree(t, Mode180MHz, Features{})
	seen := map[ID]bool{}
	for _, c := range tree.Clocks() {
		if c.Parent != "" && !seen[c.Parent] {
			t.Errorf("%s evaluated before its parent %s", c.ID, c.Parent)
		}
		if c.Divider < 1 {
			t.Errorf("%s: divider %d", c.ID, c.Divider)
		}
		if c.Max != 0 && c.Freq > c.Max {
			t.Errorf("%s above %s", c, c.Max)
		}
		seen[c.ID] = true
	}
}

func TestBuildTree_sysTick(t *testing.T) {
	tree := mustTree(t, Mode220MHz, Features{USecPerTick: 10000})
	st, ok := tree.Clock(SysTick)
	if !ok {
		t.Fatal("missing systick")
	}
	if st.Divider != 1 || st.Hz() != 220000000 || st.Parent != AHB {
		t.Errorf("unexpected %s", st)
	}
	r, ok := tree.SysTickReload()
	if !ok || r != 2200000 {
		t.Errorf("reload = %d, %t", r, ok)
	}
	if r >= MaxReload {
		t.Errorf("reload %d does not fit 24 bits", r)
	}
}

func TestBuildTree_tickless(t *testing.T) {
	tree := mustTree(t, Mode220MHz, Features{Tickless: true, USecPerTick: 1234})
	if tree.Has(SysTick) {
		t.Error("tickless must skip the SysTick derivation")
	}
	if _, ok := tree.SysTickReload(); ok {
		t.Error("unexpected reload")
	}
}

func TestBuildTree_unsupportedTickPeriod(t *testing.T) {
	pll, err := SelectPLLMode(Mode220MHz)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := BuildTree(pll, Features{USecPerTick: 1000})
	if !errors.Is(err, ErrUnsupportedTickPeriod) {
		t.Fatalf("expected ErrUnsupportedTickPeriod, got %v", err)
	}
	if tree != nil {
		t.Fatal("no tree expected on error")
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) || ce.Clock != SysTick || ce.Value != 1000 {
		t.Errorf("unexpected detail %v", err)
	}
}

func TestBuildTree_invalidPLL(t *testing.T) {
	pll, err := SelectPLLMode(Mode220MHz)
	if err != nil {
		t.Fatal(err)
	}
	pll.M = 100
	if tree, err := BuildTree(pll, Features{}); !errors.Is(err, ErrFccoOutOfRange) || tree != nil {
		t.Fatalf("expected ErrFccoOutOfRange, got %v", err)
	}
	pll.M = 55
	pll.Mode = 0
	if _, err := BuildTree(pll, Features{}); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSysTickReload(t *testing.T) {
	if r, err := SysTickReload(220*physic.MegaHertz, 100); err != nil || r != 2200000 {
		t.Errorf("got %d, %v", r, err)
	}
	if r, err := SysTickReload(physic.Frequency(1<<24-1)*physic.Hertz, 1); err != nil || r != 1<<24-1 {
		t.Errorf("got %d, %v", r, err)
	}
	if _, err := SysTickReload(220*physic.MegaHertz, 10); !errors.Is(err, ErrReloadOutOfRange) {
		t.Errorf("expected ErrReloadOutOfRange, got %v", err)
	}
	if _, err := SysTickReload(physic.Hertz, 100); !errors.Is(err, ErrReloadOutOfRange) {
		t.Errorf("expected ErrReloadOutOfRange, got %v", err)
	}
	if _, err := SysTickReload(220*physic.MegaHertz, 0); !errors.Is(err, ErrUnsupportedTickPeriod) {
		t.Errorf("expected ErrUnsupportedTickPeriod, got %v", err)
	}
}

func TestFeatures(t *testing.T) {
	f := Features{}
	if f.TickPeriod() != DefaultUSecPerTick || f.TicksPerSecond() != 100 {
		t.Errorf("defaults %d %d", f.TickPeriod(), f.TicksPerSecond())
	}
	f.USecPerTick = 1000
	if f.TicksPerSecond() != 1000 {
		t.Errorf("got %d", f.TicksPerSecond())
	}
}
