// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
)

// Rates are the rates of the E, P and S populations in both subnetworks
type Rates struct {
	E [NSub]float64
	P [NSub]float64
	S [NSub]float64
}

// Init sets all rates to r
func (rs *Rates) Init(r float64) {
	for i := 0; i < NSub; i++ {
		rs.E[i] = r
		rs.P[i] = r
		rs.S[i] = r
	}
}

// Circuit is the 3-population circuit: two mirrored subnetworks, each with
// excitatory (E), PV-like (P) and SST-like (S) populations.  The weights
// onto E are plastic.
type Circuit struct {
	Params PopParams `desc:"parameters"`

	Rates    Rates            `inactive:"+" desc:"current rates"`
	Nxt      Rates            `view:"-" desc:"new rates computed by RatesFmInput"`
	Theta    [NSub]float64    `inactive:"+" desc:"set-point of each excitatory population"`
	Beta     [NSub]float64    `inactive:"+" desc:"set-point regulator of each excitatory population"`
	Baseline float64          `inactive:"+" desc:"excitatory rate of the first subnetwork at conditioning onset"`
	Stim     [NSub]StimParams `inactive:"+" desc:"current stimulus input to each subnetwork"`
	TopDownS float64          `inactive:"+" desc:"current top-down input to SST-like units"`

	EE Mat2 `inactive:"+" desc:"E to E weights"`
	EP Mat2 `inactive:"+" desc:"P to E weights"`
	ES Mat2 `inactive:"+" desc:"S to E weights"`
	PE Mat2 `view:"-" desc:"E to P weights"`
	PP Mat2 `view:"-" desc:"P to P weights"`
	PS Mat2 `view:"-" desc:"S to P weights"`
	SE Mat2 `view:"-" desc:"E to S weights"`
}

// NewCircuit returns a new 3-population circuit with default parameters
func NewCircuit() *Circuit {
	cc := &Circuit{}
	cc.Defaults()
	return cc
}

func (cc *Circuit) Defaults() {
	cc.Params.Defaults()
	cc.Init()
}

// Init resets rates to 1, set-points to 1, and weights to their initial values
func (cc *Circuit) Init() {
	cp := &cc.Params
	cp.Update()
	cc.Rates.Init(1)
	cc.Nxt = cc.Rates
	for i := 0; i < NSub; i++ {
		cc.Theta[i] = 1
		cc.Beta[i] = 1
		cc.Stim[i] = StimParams{}
	}
	cc.Baseline = 0
	cc.TopDownS = 0
	cc.EE = cp.EE.Mat()
	cc.EP = cp.EP.Mat()
	cc.ES = cp.ES.Mat()
	cc.PE = cp.PE.Mat()
	cc.PP = cp.PP.Mat()
	cc.PS = cp.PS.Mat()
	cc.SE = cp.SE.Mat()
}

func (cc *Circuit) Validate(dt float64) error {
	return cc.Params.Validate(dt)
}

var popStateVars = []string{"E1", "E2", "P1", "P2", "S1", "S2", "Th1", "Th2", "Be1", "Be2"}

var popWtVars = []string{"EE11", "EE12", "EE21", "EE22", "EP11", "EP12", "EP21", "EP22", "ES11", "ES12", "ES21", "ES22"}

func (cc *Circuit) StateVars() []string { return popStateVars }

func (cc *Circuit) WtVars() []string { return popWtVars }

func (cc *Circuit) State(vals []float64) {
	rs := &cc.Rates
	for i := 0; i < NSub; i++ {
		vals[i] = rs.E[i]
		vals[NSub+i] = rs.P[i]
		vals[2*NSub+i] = rs.S[i]
		vals[3*NSub+i] = cc.Theta[i]
		vals[4*NSub+i] = cc.Beta[i]
	}
}

func (cc *Circuit) Wts(vals []float64) {
	i := 0
	for _, m := range []*Mat2{&cc.EE, &cc.EP, &cc.ES} {
		for post := 0; post < NSub; post++ {
			for pre := 0; pre < NSub; pre++ {
				vals[i] = m[post][pre]
				i++
			}
		}
	}
}

func (cc *Circuit) Probe() float64 {
	return cc.Rates.E[0]
}

func (cc *Circuit) Capture() float64 {
	cc.Baseline = cc.Rates.E[0]
	for i := 0; i < NSub; i++ {
		cc.Theta[i], cc.Beta[i] = cc.Params.Plast.SetPt.Init(cc.Baseline)
	}
	return cc.Baseline
}

func (cc *Circuit) SetStim(idx int) {
	cc.ClearStim()
	if idx < NSub {
		cc.Stim[idx] = cc.Params.Stim
	}
}

func (cc *Circuit) ClearStim() {
	for i := range cc.Stim {
		cc.Stim[i] = StimParams{}
	}
}

func (cc *Circuit) TopDown(on bool) {
	if on {
		cc.TopDownS = cc.Params.Bg.TopDownS
	} else {
		cc.TopDownS = 0
	}
}

// RatesFmInput computes the new rates into Nxt from the current rates and weights
func (cc *Circuit) RatesFmInput(dt float64) {
	cp := &cc.Params
	rs := &cc.Rates
	for i := 0; i < NSub; i++ {
		st := &cc.Stim[i]
		ie := cp.Bg.E + cc.EE.Sum(i, rs.E) - cc.EP.Sum(i, rs.P) - cc.ES.Sum(i, rs.S) + st.E
		ip := cc.PE.Sum(i, rs.E) - cc.PS.Sum(i, rs.S) - cc.PP.Sum(i, rs.P) + cp.Bg.P + st.P
		is := cc.SE.Sum(i, rs.E) + cp.Bg.S + cc.TopDownS + st.S
		cc.Nxt.E[i] = cp.E.Step(rs.E[i], ie, dt)
		cc.Nxt.P[i] = cp.P.Step(rs.P[i], ip, dt)
		cc.Nxt.S[i] = cp.S.Step(rs.S[i], is, dt)
	}
}

// PlastFmRates updates set-points, then scales the weights onto E relative
// to the set-point, then applies Hebbian learning to E to E weights,
// all from the new rates.
func (cc *Circuit) PlastFmRates(dt float64, g *plast.Gates) {
	pp := &cc.Params.Plast
	nx := &cc.Nxt
	lr := g.HebbRate()
	for i := 0; i < NSub; i++ {
		pp.SetPt.Step(&cc.Theta[i], &cc.Beta[i], nx.E[i], dt, g)
	}
	for i := 0; i < NSub; i++ {
		fe := pp.ScaleE.Factor(g.Flags.EScale, nx.E[i], cc.Theta[i], dt)
		fp := pp.ScaleP.Factor(g.Flags.PScale, nx.E[i], cc.Theta[i], dt)
		fs := pp.ScaleS.Factor(g.Flags.SScale, nx.E[i], cc.Theta[i], dt)
		for j := 0; j < NSub; j++ {
			ee := pp.ScaleE.Apply(cc.EE[i][j], fe)
			ee += pp.Hebb.DWt(nx.E[i], nx.E[j], cc.Baseline, lr, dt)
			cc.EE[i][j] = plast.ClampWt(ee)
			cc.EP[i][j] = plast.ClampWt(pp.ScaleP.Apply(cc.EP[i][j], fp))
			cc.ES[i][j] = plast.ClampWt(pp.ScaleS.Apply(cc.ES[i][j], fs))
		}
	}
}

func (cc *Circuit) Commit() {
	cc.Rates = cc.Nxt
}
