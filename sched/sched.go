// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sched provides the phase and stimulus scheduler of the conditioning
protocol: a first stimulus (conditioning) and optionally a second one
(testing), separated by a long consolidation period.

All stimulus times are converted once into integer step thresholds, and
events fire by exact equality with the current step.  The schedule also
owns the plasticity gates, arming them at conditioning onset and applying
the third factor at every stimulus offset.
*/
package sched

import (
	"errors"
	"fmt"
	"math"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
)

// MaxStims is the number of stimuli the protocol supports: conditioning and testing.
const MaxStims = 2

// Stim is one stimulus presentation, in seconds from the start of the protocol
type Stim struct {
	On  float64 `desc:"onset time in seconds"`
	Off float64 `desc:"offset time in seconds"`
}

// Params are the protocol timing parameters
type Params struct {
	Dt     float64 `def:"0.0001" min:"0" desc:"integration time step in seconds"`
	Settle float64 `def:"2" min:"0" desc:"settling time in seconds added before the protocol starts, so that all stimulus times are offset by this amount"`
	Margin float64 `def:"5" min:"0" desc:"time in seconds recorded before onset and after offset of each stimulus"`
	Stims  []Stim  `desc:"stimulus table: the first is conditioning, the optional second is testing"`
}

func (sp *Params) Defaults() {
	sp.Dt = 1.0e-4
	sp.Settle = 2
	sp.Margin = 5
	sp.Stims = []Stim{{On: 5, Off: 20}, {On: 4*3600 + 5, Off: 4*3600 + 20}}
}

// StepOf returns the integration step at protocol time t in seconds
func (sp *Params) StepOf(t float64) int {
	return int(math.Round((t + sp.Settle) / sp.Dt))
}

// Validate returns an error if the protocol timing is not usable
func (sp *Params) Validate() error {
	if sp.Dt <= 0 {
		return fmt.Errorf("sched: Dt must be > 0, is %g", sp.Dt)
	}
	if sp.Settle < 0 || sp.Margin < 0 {
		return fmt.Errorf("sched: Settle %g and Margin %g must be >= 0", sp.Settle, sp.Margin)
	}
	ns := len(sp.Stims)
	if ns == 0 || ns > MaxStims {
		return fmt.Errorf("sched: need 1 or %d stimuli, have %d", MaxStims, ns)
	}
	for i, st := range sp.Stims {
		if st.On >= st.Off {
			return fmt.Errorf("sched: stimulus %d onset %g must be before offset %g", i, st.On, st.Off)
		}
		if i > 0 && st.On <= sp.Stims[i-1].Off {
			return fmt.Errorf("sched: stimulus %d onset %g must be after previous offset %g", i, st.On, sp.Stims[i-1].Off)
		}
	}
	if sp.StepOf(sp.Stims[0].On-sp.Margin) < 0 {
		return errors.New("sched: conditioning window starts before step 0 -- increase Settle or decrease Margin")
	}
	if ns > 1 && sp.Stims[0].Off+sp.Margin > sp.Stims[1].On-sp.Margin {
		return errors.New("sched: conditioning and testing recording windows overlap")
	}
	return nil
}

// Window is a range of steps [Start, End).  End < 0 means open-ended.
type Window struct {
	Start int
	End   int
}

// In returns true if step is within the window
func (wn Window) In(step int) bool {
	return step >= wn.Start && (wn.End < 0 || step < wn.End)
}

// Empty returns true if no step can be within the window
func (wn Window) Empty() bool {
	return wn.End >= 0 && wn.End <= wn.Start
}

// NSamples returns the number of samples taken every period steps
// within the window, for a run of nsteps steps.
func (wn Window) NSamples(period, nsteps int) int {
	st := wn.Start
	if st < 0 {
		st = 0
	}
	ed := nsteps
	if wn.End >= 0 && wn.End < ed {
		ed = wn.End
	}
	if ed <= st || period <= 0 {
		return 0
	}
	return (ed-st-1)/period + 1
}

// Events are the stimulus events fired by one Tick
type Events struct {
	Onset  int `desc:"index of the stimulus turned on at this step, -1 if none"`
	Offset int `desc:"index of the stimulus turned off at this step, -1 if none"`
}

// Schedule is the protocol state machine, advanced once per step by Tick
type Schedule struct {
	Params Params           `desc:"timing parameters"`
	Flags  plast.Flags      `desc:"plasticity flags armed at conditioning onset"`
	Theta  plast.ThetaFlags `desc:"set-point term switches armed at conditioning onset"`
	Gates  plast.Gates      `inactive:"+" desc:"current plasticity gates"`

	Applied int    `inactive:"+" desc:"number of stimuli turned on so far"`
	Ended   int    `inactive:"+" desc:"number of stimuli turned off so far"`
	Phase   Phases `inactive:"+" desc:"current phase, as of the last Tick"`

	OnSteps  []int            `view:"-" desc:"onset step of each stimulus"`
	OffSteps []int            `view:"-" desc:"offset step of each stimulus"`
	Wins     [WindowsN]Window `view:"-" desc:"recording windows in steps"`
}

// Init validates the params and computes the step thresholds and recording windows.
// It must be called before the first Tick, and resets all state.
func (sc *Schedule) Init(sp Params, f plast.Flags, th plast.ThetaFlags) error {
	if err := sp.Validate(); err != nil {
		return err
	}
	sc.Params = sp
	sc.Flags = f
	sc.Theta = th
	ns := len(sp.Stims)
	sc.OnSteps = make([]int, ns)
	sc.OffSteps = make([]int, ns)
	for i, st := range sp.Stims {
		sc.OnSteps[i] = sp.StepOf(st.On)
		sc.OffSteps[i] = sp.StepOf(st.Off)
	}
	c := sp.Stims[0]
	sc.Wins[CondWin] = Window{Start: sp.StepOf(c.On - sp.Margin), End: sp.StepOf(c.Off + sp.Margin)}
	if ns > 1 {
		ts := sp.Stims[1]
		sc.Wins[ConsolWin] = Window{Start: sc.OffSteps[0], End: sc.OnSteps[1]}
		sc.Wins[TestWin] = Window{Start: sp.StepOf(ts.On - sp.Margin), End: sp.StepOf(ts.Off + sp.Margin)}
	} else {
		sc.Wins[ConsolWin] = Window{Start: sc.OffSteps[0], End: -1}
		sc.Wins[TestWin] = Window{Start: 0, End: 0}
	}
	sc.Reset()
	return nil
}

// Reset resets the run state: gates off, no stimuli applied
func (sc *Schedule) Reset() {
	sc.Gates.Reset()
	sc.Applied = 0
	sc.Ended = 0
	sc.Phase = Idle
}

// Window returns the recording window w in steps
func (sc *Schedule) Window(w Windows) Window {
	return sc.Wins[w]
}

// NSamples returns the number of samples window w receives at given
// sampling period over a run of nsteps steps.
func (sc *Schedule) NSamples(w Windows, period, nsteps int) int {
	return sc.Wins[w].NSamples(period, nsteps)
}

// Tick advances the state machine to step, and returns the stimulus events
// that fire at this step.  Onset of the first stimulus arms the plasticity
// gates.  A stimulus can only turn on after the previous one turned off.
func (sc *Schedule) Tick(step int) Events {
	ev := Events{Onset: -1, Offset: -1}
	if sc.Applied == sc.Ended && sc.Applied < len(sc.OnSteps) && step == sc.OnSteps[sc.Applied] {
		ev.Onset = sc.Applied
		if sc.Applied == 0 {
			sc.Gates.Arm(sc.Flags, sc.Theta)
		}
		sc.Applied++
	}
	if sc.Ended < sc.Applied && step == sc.OffSteps[sc.Ended] {
		ev.Offset = sc.Ended
		sc.Gates.Offset()
		sc.Ended++
	}
	sc.Phase = sc.PhaseAt(step)
	return ev
}

// PhaseAt returns the protocol phase at given step, from the thresholds alone
func (sc *Schedule) PhaseAt(step int) Phases {
	switch {
	case step < sc.Params.StepOf(0):
		return Idle
	case step < sc.OnSteps[0]:
		return Baseline1
	case step < sc.OffSteps[0]:
		return Conditioning
	}
	if len(sc.OnSteps) < 2 {
		return Consolidation
	}
	switch {
	case step < sc.Wins[TestWin].Start:
		return Consolidation
	case step < sc.OnSteps[1]:
		return Baseline3
	case step < sc.OffSteps[1]:
		return Testing
	}
	return Done
}
