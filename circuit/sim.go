// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package circuit provides the rate-based cortical circuit models and the
driver that integrates them through the conditioning protocol.

Two variants are provided: Circuit, with excitatory (E), PV-like (P) and
SST-like (S) populations in each of two mirrored subnetworks, and
DendCircuit, in which the excitatory units have apical and basal dendritic
compartments.  Both implement the Model interface, which Sim.Run drives
step by step with the scheduler (package sched), the plasticity gates
(package plast) and the recorder (package record).
*/
package circuit

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/rate"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/record"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/sched"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/minmax"
)

var errPlastTau = errors.New("circuit: plasticity time constants must be > 0")

// Model is a circuit variant that Sim can drive.  Each step is computed
// in two stages: RatesFmInput computes all new rates from the previous
// rates and weights, then PlastFmRates updates set-points and weights from
// the new rates, and Commit makes the new rates current.
type Model interface {
	// Init resets the state and weights to their initial values
	Init()

	// StateVars returns the names of the recorded state variables, in State order
	StateVars() []string

	// WtVars returns the names of the recorded plastic weights, in Wts order
	WtVars() []string

	// State copies the current state into vals, which has len(StateVars())
	State(vals []float64)

	// Wts copies the current plastic weights into vals, which has len(WtVars())
	Wts(vals []float64)

	// Probe returns the excitatory rate of the first subnetwork, which
	// is checked against the explosion and extinction guards.
	Probe() float64

	// Capture sets the set-points and regulators from the current activity of
	// the first subnetwork at conditioning onset, and returns the baseline rate.
	Capture() float64

	// SetStim turns on stimulus idx, which targets subnetwork idx
	SetStim(idx int)

	// ClearStim turns all stimuli off
	ClearStim()

	// TopDown turns the top-down input to SST-like units on or off
	TopDown(on bool)

	// RatesFmInput computes the new rates for a step of size dt
	RatesFmInput(dt float64)

	// PlastFmRates updates set-points and plastic weights from the new rates
	PlastFmRates(dt float64, g *plast.Gates)

	// Commit makes the new rates current
	Commit()

	// Validate returns an error if the model cannot be integrated with step dt
	Validate(dt float64) error
}

// Result summarizes a run
type Result struct {
	Steps  int         `desc:"number of steps integrated"`
	Status rate.Status `desc:"Completed, or the guard that stopped the run early"`
	ERange minmax.F64  `desc:"range of the probed excitatory rate over the run -- Max starts at 0"`
}

// Sim runs a Model through the protocol and records it
type Sim struct {
	Model  Model            `desc:"the circuit being simulated"`
	Sched  sched.Schedule   `desc:"protocol schedule and plasticity gates"`
	Rec    *record.Recorder `desc:"sample buffers"`
	NSteps int              `desc:"number of steps the buffers are sized for"`

	state []float64
	wts   []float64
}

// NewSim returns a Sim for model m with the given protocol, plasticity flags,
// sampling periods for each recording window, and run length in steps.
// The recorder buffers are allocated to hold exactly the samples of a full run.
func NewSim(m Model, sp sched.Params, f plast.Flags, th plast.ThetaFlags, periods [sched.WindowsN]int, nsteps int) (*Sim, error) {
	sim := &Sim{Model: m, NSteps: nsteps}
	if err := sim.Sched.Init(sp, f, th); err != nil {
		return nil, err
	}
	for w, p := range periods {
		if p <= 0 {
			return nil, fmt.Errorf("circuit: %v sampling period must be > 0, is %d", sched.Windows(w), p)
		}
	}
	sim.Rec = record.New(m.StateVars(), m.WtVars(), periods, sim.Counts(periods, nsteps))
	return sim, nil
}

// Counts returns the expected number of samples in each window for a run
// of nsteps steps with given sampling periods
func (sim *Sim) Counts(periods [sched.WindowsN]int, nsteps int) [sched.WindowsN]int {
	var cnt [sched.WindowsN]int
	for w := range cnt {
		cnt[w] = sim.Sched.NSamples(sched.Windows(w), periods[w], nsteps)
	}
	return cnt
}

// Run resets the model and integrates it for nsteps steps, stopping early if
// the excitatory rate of the first subnetwork explodes or goes extinct.
// Parameters and buffer sizes are checked before the first step.
func (sim *Sim) Run(nsteps int) (Result, error) {
	res := Result{}
	m := sim.Model
	dt := sim.Sched.Params.Dt
	if err := m.Validate(dt); err != nil {
		return res, err
	}
	if err := sim.Rec.Validate(sim.Counts(sim.Rec.Periods, nsteps)); err != nil {
		return res, err
	}
	sim.state = make([]float64, len(m.StateVars()))
	sim.wts = make([]float64, len(m.WtVars()))

	m.Init()
	sim.Sched.Reset()
	sim.Rec.Reset()
	res.ERange = minmax.F64{Min: math.MaxFloat64, Max: 0}
	for step := 0; step < nsteps; step++ {
		ev := sim.Sched.Tick(step)
		if ev.Onset >= 0 {
			if ev.Onset == 0 {
				m.Capture()
			}
			m.SetStim(ev.Onset)
		}
		if ev.Offset >= 0 {
			m.ClearStim()
			if ev.Offset == 0 {
				m.TopDown(true)
			}
		}
		sim.Sample(step)

		e := m.Probe()
		res.ERange.FitValInRange(e)
		if st := rate.Check(e); st != rate.Running {
			res.Steps = step
			res.Status = st
			log.Printf("circuit: run stopped at step %d (t = %gs, phase %v): %v, E = %g\n", step, float64(step)*dt-sim.Sched.Params.Settle, sim.Sched.Phase, st, e)
			return res, nil
		}

		m.RatesFmInput(dt)
		m.PlastFmRates(dt, &sim.Sched.Gates)
		m.Commit()
	}
	res.Steps = nsteps
	res.Status = rate.Completed
	return res, nil
}

// Sample records the current state into every window that is due at step
func (sim *Sim) Sample(step int) {
	got := false
	for w := sched.CondWin; w < sched.WindowsN; w++ {
		if !sim.Rec.Due(w, step, sim.Sched.Window(w)) {
			continue
		}
		if !got {
			sim.Model.State(sim.state)
			sim.Model.Wts(sim.wts)
			got = true
		}
		sim.Rec.Record(w, sim.state, sim.wts)
	}
}

// Table returns the samples of window w as a table, with time in seconds
// from the start of the protocol
func (sim *Sim) Table(w sched.Windows) *etable.Table {
	sp := &sim.Sched.Params
	st := sim.Sched.Window(w).Start
	t0 := float64(st)*sp.Dt - sp.Settle
	return sim.Rec.Table(w, t0, float64(sim.Rec.Periods[w])*sp.Dt)
}
