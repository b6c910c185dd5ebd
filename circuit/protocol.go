// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"fmt"
	"math"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/sched"
)

// Protocol is the conditioning protocol: a conditioning stimulus 5 s after
// start, and a testing stimulus Hours later.
type Protocol struct {
	Hours      float64 `def:"4,24,48" min:"0" desc:"time between conditioning and testing in hours"`
	StimDur    float64 `def:"15" min:"0" desc:"duration of each stimulus in seconds"`
	Dt         float64 `def:"0.0001" min:"0" desc:"integration time step in seconds"`
	PeriodStim int     `def:"20" min:"1" desc:"sampling period in steps around the stimuli"`
	PeriodSim  int     `def:"200000" min:"1" desc:"sampling period in steps during consolidation"`
	ThrTime    float64 `def:"15" desc:"time in seconds after the start of the conditioning window at which the aversion threshold is read"`
}

func (pr *Protocol) Defaults() {
	pr.Hours = 4
	pr.StimDur = 15
	pr.Dt = 1.0e-4
	pr.PeriodStim = 20
	pr.PeriodSim = 200000
	pr.ThrTime = 15
}

// Sched returns the scheduler params for the protocol
func (pr *Protocol) Sched() sched.Params {
	sp := sched.Params{}
	sp.Defaults()
	sp.Dt = pr.Dt
	sec := pr.Hours * 3600
	sp.Stims = []sched.Stim{{On: 5, Off: 5 + pr.StimDur}, {On: sec + 5, Off: sec + 5 + pr.StimDur}}
	return sp
}

// Periods returns the sampling period of each recording window
func (pr *Protocol) Periods() [sched.WindowsN]int {
	return [sched.WindowsN]int{sched.CondWin: pr.PeriodStim, sched.ConsolWin: pr.PeriodSim, sched.TestWin: pr.PeriodStim}
}

// NSteps returns the total number of steps: the protocol plus margins around
// both stimuli and the initial settling time.
func (pr *Protocol) NSteps() int {
	return int(math.Round((pr.Hours*3600 + (pr.StimDur+10)*2 + 2) / pr.Dt))
}

// NewSim returns a Sim for model m running the full protocol with flags f
func (pr *Protocol) NewSim(m Model, f plast.Flags, th plast.ThetaFlags) (*Sim, error) {
	return NewSim(m, pr.Sched(), f, th, pr.Periods(), pr.NSteps())
}

// AvThreshold runs the conditioning stimulus without plasticity and returns
// the excitatory rate of the second subnetwork ThrTime seconds into the
// conditioning window: the aversion threshold against which the testing
// response is judged.
func (pr *Protocol) AvThreshold(m Model) (float64, error) {
	sp := pr.Sched()
	sp.Stims = sp.Stims[:1]
	nsteps := int(math.Round(30 / pr.Dt))
	sim, err := NewSim(m, sp, plast.Flags{}, plast.DefaultTheta(), pr.Periods(), nsteps)
	if err != nil {
		return 0, err
	}
	if _, err := sim.Run(nsteps); err != nil {
		return 0, err
	}
	idx := int(math.Round(pr.ThrTime / pr.Dt / float64(pr.PeriodStim)))
	if idx >= sim.Rec.N[sched.CondWin] {
		return 0, fmt.Errorf("circuit: aversion threshold sample %d not recorded, have %d", idx, sim.Rec.N[sched.CondWin])
	}
	return float64(sim.Rec.Value(sched.CondWin, 1, idx)), nil
}

// Specific returns true if the response to the testing stimulus stays below
// the aversion threshold, i.e. the memory is specific to the conditioned
// stimulus rather than overgeneralized.
func Specific(testE, thr float64) bool {
	return testE < thr
}
