// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"testing"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
)

func TestDefaultWindows(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	sc := &Schedule{}
	if err := sc.Init(sp, plast.AllFlags(), plast.DefaultTheta()); err != nil {
		t.Fatal(err)
	}
	nsteps := sp.StepOf(4*3600 + 50)
	if nsteps != 144520000 {
		t.Errorf("nsteps: %v\n", nsteps)
	}
	cor := []int{12500, 720, 12500}
	pers := []int{20, 200000, 20}
	for w := CondWin; w < WindowsN; w++ {
		n := sc.NSamples(w, pers[w], nsteps)
		if n != cor[w] {
			t.Errorf("NSamples err: window: %v, n: %v, cor: %v\n", w, n, cor[w])
		}
	}
	if sc.OnSteps[0] != 70000 || sc.OffSteps[0] != 220000 || sc.OnSteps[1] != 144070000 || sc.OffSteps[1] != 144220000 {
		t.Errorf("thresholds: on: %v, off: %v\n", sc.OnSteps, sc.OffSteps)
	}
}

func testParams() Params {
	return Params{Dt: 0.01, Settle: 2, Margin: 1, Stims: []Stim{{On: 1, Off: 2}, {On: 5, Off: 6}}}
}

func TestTick(t *testing.T) {
	sc := &Schedule{}
	if err := sc.Init(testParams(), plast.AllFlags(), plast.DefaultTheta()); err != nil {
		t.Fatal(err)
	}
	var ons, offs []int
	for step := 0; step < 1000; step++ {
		ev := sc.Tick(step)
		if ev.Onset >= 0 {
			ons = append(ons, step)
		}
		if ev.Offset >= 0 {
			offs = append(offs, step)
		}
		switch {
		case step < 300:
			if sc.Gates.Armed {
				t.Errorf("gates armed before onset at step: %v\n", step)
			}
		case step < 400:
			if sc.Gates.HebbRate() != 1 {
				t.Errorf("learning should be on during conditioning at step: %v\n", step)
			}
		default:
			if sc.Gates.HebbRate() != 0 {
				t.Errorf("third factor should stop learning after offset at step: %v\n", step)
			}
		}
	}
	if len(ons) != 2 || ons[0] != 300 || ons[1] != 700 {
		t.Errorf("onsets: %v\n", ons)
	}
	if len(offs) != 2 || offs[0] != 400 || offs[1] != 800 {
		t.Errorf("offsets: %v\n", offs)
	}
	if sc.Applied != 2 || sc.Ended != 2 || sc.Phase != Done {
		t.Errorf("final state: applied: %v, ended: %v, phase: %v\n", sc.Applied, sc.Ended, sc.Phase)
	}
}

func TestPhaseAt(t *testing.T) {
	sc := &Schedule{}
	if err := sc.Init(testParams(), plast.Flags{}, plast.DefaultTheta()); err != nil {
		t.Fatal(err)
	}
	tst := []int{0, 199, 200, 299, 300, 399, 400, 599, 600, 699, 700, 799, 800, 5000}
	cor := []Phases{Idle, Idle, Baseline1, Baseline1, Conditioning, Conditioning, Consolidation, Consolidation,
		Baseline3, Baseline3, Testing, Testing, Done, Done}
	for i := range tst {
		if ph := sc.PhaseAt(tst[i]); ph != cor[i] {
			t.Errorf("PhaseAt err: idx: %v, step: %v, phase: %v, cor: %v\n", i, tst[i], ph, cor[i])
		}
	}
}

func TestWindows(t *testing.T) {
	sc := &Schedule{}
	if err := sc.Init(testParams(), plast.Flags{}, plast.DefaultTheta()); err != nil {
		t.Fatal(err)
	}
	cor := []Window{{200, 500}, {400, 700}, {600, 900}}
	for w := CondWin; w < WindowsN; w++ {
		if sc.Window(w) != cor[w] {
			t.Errorf("Window err: %v: %v, cor: %v\n", w, sc.Window(w), cor[w])
		}
	}
	cw := sc.Window(ConsolWin)
	if !cw.In(400) || cw.In(700) || cw.In(399) {
		t.Errorf("ConsolWin In err: %v\n", cw)
	}
	// run ends early, inside the conditioning window
	if n := sc.NSamples(CondWin, 10, 250); n != 5 {
		t.Errorf("NSamples truncated: %v\n", n)
	}
	if n := sc.NSamples(TestWin, 10, 250); n != 0 {
		t.Errorf("NSamples before window: %v\n", n)
	}

	// single stimulus: open-ended consolidation, no testing window
	sp := testParams()
	sp.Stims = sp.Stims[:1]
	if err := sc.Init(sp, plast.Flags{}, plast.DefaultTheta()); err != nil {
		t.Fatal(err)
	}
	if !sc.Window(TestWin).Empty() {
		t.Errorf("TestWin should be empty with one stimulus: %v\n", sc.Window(TestWin))
	}
	if n := sc.NSamples(ConsolWin, 100, 1000); n != 6 {
		t.Errorf("open-ended ConsolWin samples: %v\n", n)
	}
	if ph := sc.PhaseAt(100000); ph != Consolidation {
		t.Errorf("phase after single stimulus: %v\n", ph)
	}
}

func TestValidate(t *testing.T) {
	bad := []Params{
		{Dt: 0, Settle: 2, Margin: 1, Stims: []Stim{{1, 2}}},
		{Dt: 0.01, Settle: 2, Margin: 1},
		{Dt: 0.01, Settle: 2, Margin: 1, Stims: []Stim{{1, 2}, {3, 4}, {5, 6}}},
		{Dt: 0.01, Settle: 2, Margin: 1, Stims: []Stim{{2, 1}}},
		{Dt: 0.01, Settle: 2, Margin: 1, Stims: []Stim{{1, 3}, {2, 4}}},
		{Dt: 0.01, Settle: 0, Margin: 5, Stims: []Stim{{1, 2}}},
		{Dt: 0.01, Settle: 2, Margin: 2, Stims: []Stim{{1, 2}, {5, 6}}},
	}
	for i, sp := range bad {
		if err := sp.Validate(); err == nil {
			t.Errorf("Validate should fail: idx: %v, params: %+v\n", i, sp)
		}
	}
	sp := testParams()
	if err := sp.Validate(); err != nil {
		t.Error(err)
	}
}

func TestEnumStrings(t *testing.T) {
	if Consolidation.String() != "Consolidation" || TestWin.String() != "TestWin" {
		t.Errorf("String err: %v %v\n", Consolidation, TestWin)
	}
	var ph Phases
	if err := ph.FromString("Baseline3"); err != nil || ph != Baseline3 {
		t.Errorf("FromString err: %v %v\n", ph, err)
	}
}
