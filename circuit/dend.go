// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
	"github.com/goki/ki/kit"
)

// Comps indexes the set-points of the 3-compartment circuit
type Comps int32

//go:generate stringer -type=Comps

var KiT_Comps = kit.Enums.AddEnum(CompsN, kit.NotBitFlag, nil)

func (ev Comps) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Comps) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// CompA is the apical dendritic compartment
	CompA Comps = iota

	// CompB is the basal dendritic compartment
	CompB

	// CompE is the soma
	CompE

	CompsN
)

// DendRates are the rates and dendritic currents of the 3-compartment circuit
type DendRates struct {
	Rates
	IA [NSub]float64
	IB [NSub]float64
}

// DendCircuit is the 3-compartment circuit: as Circuit, but the excitatory
// units receive excitation and SST-like inhibition on apical (A) and basal (B)
// dendritic compartments, whose currents drive the soma together with
// PV-like inhibition.  Each compartment has its own set-point and regulator.
type DendCircuit struct {
	Params DendParams `desc:"parameters"`

	Rates    DendRates             `inactive:"+" desc:"current rates and dendritic currents"`
	Nxt      DendRates             `view:"-" desc:"new values computed by RatesFmInput"`
	IE       [NSub]float64         `inactive:"+" desc:"somatic input current of the last step"`
	Theta    [CompsN][NSub]float64 `inactive:"+" desc:"set-point of each compartment"`
	Beta     [CompsN][NSub]float64 `inactive:"+" desc:"set-point regulator of each compartment"`
	Baseline [CompsN]float64       `inactive:"+" desc:"activity of each compartment of the first subnetwork at conditioning onset"`
	Stim     [NSub]StimParams      `inactive:"+" desc:"current stimulus input to each subnetwork"`
	TopDownS float64               `inactive:"+" desc:"current top-down input to SST-like units"`

	AE Mat2 `inactive:"+" desc:"E to apical weights"`
	BE Mat2 `inactive:"+" desc:"E to basal weights"`
	EP Mat2 `inactive:"+" desc:"P to soma weights"`
	AS Mat2 `inactive:"+" desc:"S to apical weights"`
	BS Mat2 `inactive:"+" desc:"S to basal weights"`
	PE Mat2 `view:"-" desc:"E to P weights"`
	PP Mat2 `view:"-" desc:"P to P weights"`
	PS Mat2 `view:"-" desc:"S to P weights"`
	SE Mat2 `view:"-" desc:"E to S weights"`
}

// NewDendCircuit returns a new 3-compartment circuit with default parameters
func NewDendCircuit() *DendCircuit {
	dc := &DendCircuit{}
	dc.Defaults()
	return dc
}

func (dc *DendCircuit) Defaults() {
	dc.Params.Defaults()
	dc.Init()
}

// Init resets rates and currents to 1, set-points to 1, and weights to
// their initial values
func (dc *DendCircuit) Init() {
	dp := &dc.Params
	dp.Update()
	dc.Rates.Init(1)
	for i := 0; i < NSub; i++ {
		dc.Rates.IA[i] = 1
		dc.Rates.IB[i] = 1
		dc.IE[i] = 0
		dc.Stim[i] = StimParams{}
		for c := CompA; c < CompsN; c++ {
			dc.Theta[c][i] = 1
			dc.Beta[c][i] = 1
		}
	}
	dc.Nxt = dc.Rates
	dc.Baseline = [CompsN]float64{}
	dc.TopDownS = 0
	dc.AE = dp.AE.Mat()
	dc.BE = dp.BE.Mat()
	dc.EP = dp.EP.Mat()
	dc.AS = dp.AS.Mat()
	dc.BS = dp.BS.Mat()
	dc.PE = dp.PE.Mat()
	dc.PP = dp.PP.Mat()
	dc.PS = dp.PS.Mat()
	dc.SE = dp.SE.Mat()
}

func (dc *DendCircuit) Validate(dt float64) error {
	return dc.Params.Validate(dt)
}

var dendStateVars = []string{"E1", "E2", "P1", "P2", "S1", "S2",
	"IA1", "IA2", "IB1", "IB2", "IE1", "IE2",
	"ThA1", "ThA2", "ThB1", "ThB2", "ThE1", "ThE2",
	"BeA1", "BeA2", "BeB1", "BeB2", "BeE1", "BeE2"}

var dendWtVars = []string{"AE11", "AE12", "AE21", "AE22", "BE11", "BE12", "BE21", "BE22",
	"EP11", "EP12", "EP21", "EP22", "AS11", "AS12", "AS21", "AS22", "BS11", "BS12", "BS21", "BS22"}

func (dc *DendCircuit) StateVars() []string { return dendStateVars }

func (dc *DendCircuit) WtVars() []string { return dendWtVars }

func (dc *DendCircuit) State(vals []float64) {
	rs := &dc.Rates
	rows := [...][NSub]float64{rs.E, rs.P, rs.S, rs.IA, rs.IB, dc.IE,
		dc.Theta[CompA], dc.Theta[CompB], dc.Theta[CompE],
		dc.Beta[CompA], dc.Beta[CompB], dc.Beta[CompE]}
	for ri := range rows {
		for i := 0; i < NSub; i++ {
			vals[ri*NSub+i] = rows[ri][i]
		}
	}
}

func (dc *DendCircuit) Wts(vals []float64) {
	i := 0
	for _, m := range []*Mat2{&dc.AE, &dc.BE, &dc.EP, &dc.AS, &dc.BS} {
		for post := 0; post < NSub; post++ {
			for pre := 0; pre < NSub; pre++ {
				vals[i] = m[post][pre]
				i++
			}
		}
	}
}

func (dc *DendCircuit) Probe() float64 {
	return dc.Rates.E[0]
}

// Capture sets the set-point of each compartment from its activity in the
// first subnetwork.  Returns the somatic baseline rate.
func (dc *DendCircuit) Capture() float64 {
	rs := &dc.Rates
	dc.Baseline = [CompsN]float64{CompA: rs.IA[0], CompB: rs.IB[0], CompE: rs.E[0]}
	for c := CompA; c < CompsN; c++ {
		for i := 0; i < NSub; i++ {
			dc.Theta[c][i], dc.Beta[c][i] = dc.Params.Plast.SetPt.Init(dc.Baseline[c])
		}
	}
	return dc.Baseline[CompE]
}

func (dc *DendCircuit) SetStim(idx int) {
	dc.ClearStim()
	if idx < NSub {
		dc.Stim[idx] = dc.Params.Stim
	}
}

func (dc *DendCircuit) ClearStim() {
	for i := range dc.Stim {
		dc.Stim[i] = StimParams{}
	}
}

func (dc *DendCircuit) TopDown(on bool) {
	if on {
		dc.TopDownS = dc.Params.Bg.TopDownS
	} else {
		dc.TopDownS = 0
	}
}

// RatesFmInput computes the new rates and currents into Nxt.  The soma is
// driven by the dendritic currents of the previous step.
func (dc *DendCircuit) RatesFmInput(dt float64) {
	dp := &dc.Params
	rs := &dc.Rates
	for i := 0; i < NSub; i++ {
		st := &dc.Stim[i]
		ia := dc.AE.Sum(i, rs.E) - dc.AS.Sum(i, rs.S) + dp.GA
		ib := dc.BE.Sum(i, rs.E) - dc.BS.Sum(i, rs.S) + dp.GB
		ie := dp.LambdaA*rs.IA[i] + dp.LambdaB*rs.IB[i] - dc.EP.Sum(i, rs.P) + dp.Bg.E + st.E
		ip := dc.PE.Sum(i, rs.E) - dc.PS.Sum(i, rs.S) - dc.PP.Sum(i, rs.P) + dp.Bg.P + st.P
		is := dc.SE.Sum(i, rs.E) + dp.Bg.S + dc.TopDownS + st.S
		dc.IE[i] = ie
		dc.Nxt.IA[i] = dp.A.Step(rs.IA[i], ia, dt)
		dc.Nxt.IB[i] = dp.B.Step(rs.IB[i], ib, dt)
		dc.Nxt.E[i] = dp.E.Step(rs.E[i], ie, dt)
		dc.Nxt.P[i] = dp.P.Step(rs.P[i], ip, dt)
		dc.Nxt.S[i] = dp.S.Step(rs.S[i], is, dt)
	}
}

// PlastFmRates updates the set-point of each compartment, then scales the
// weights onto each compartment relative to its own set-point, then applies
// Hebbian learning to the E to dendrite weights, all from the new values.
func (dc *DendCircuit) PlastFmRates(dt float64, g *plast.Gates) {
	dp := &dc.Params
	pp := &dp.Plast
	nx := &dc.Nxt
	lr := g.HebbRate()
	act := [CompsN][NSub]float64{CompA: nx.IA, CompB: nx.IB, CompE: nx.E}
	for c := CompA; c < CompsN; c++ {
		for i := 0; i < NSub; i++ {
			pp.SetPt.Step(&dc.Theta[c][i], &dc.Beta[c][i], act[c][i], dt, g)
		}
	}
	for i := 0; i < NSub; i++ {
		fa := pp.ScaleE.Factor(g.Flags.EScale, nx.IA[i], dc.Theta[CompA][i], dt)
		fb := pp.ScaleE.Factor(g.Flags.EScale, nx.IB[i], dc.Theta[CompB][i], dt)
		fp := pp.ScaleP.Factor(g.Flags.PScale, nx.E[i], dc.Theta[CompE][i], dt)
		fsa := pp.ScaleS.Factor(g.Flags.SScale, nx.IA[i], dc.Theta[CompA][i], dt)
		fsb := pp.ScaleS.Factor(g.Flags.SScale, nx.IB[i], dc.Theta[CompB][i], dt)
		for j := 0; j < NSub; j++ {
			ae := pp.ScaleE.Apply(dc.AE[i][j], fa)
			ae += pp.Hebb.DWt(nx.E[i], nx.E[j], dc.Baseline[CompE], lr*dp.HebbA, dt)
			dc.AE[i][j] = plast.ClampWt(ae)
			be := pp.ScaleE.Apply(dc.BE[i][j], fb)
			be += pp.Hebb.DWt(nx.E[i], nx.E[j], dc.Baseline[CompE], lr*dp.HebbB, dt)
			dc.BE[i][j] = plast.ClampWt(be)
			dc.EP[i][j] = plast.ClampWt(pp.ScaleP.Apply(dc.EP[i][j], fp))
			dc.AS[i][j] = plast.ClampWt(pp.ScaleS.Apply(dc.AS[i][j], fsa))
			dc.BS[i][j] = plast.ClampWt(pp.ScaleS.Apply(dc.BS[i][j], fsb))
		}
	}
}

func (dc *DendCircuit) Commit() {
	dc.Rates = dc.Nxt
}
