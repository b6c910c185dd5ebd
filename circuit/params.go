// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/rate"
)

// PlastParams are the plasticity parameters shared by all circuit variants
type PlastParams struct {
	Hebb   plast.HebbParams     `view:"inline" desc:"Hebbian learning on excitatory-to-excitatory weights"`
	ScaleE plast.ScaleParams    `view:"inline" desc:"scaling of excitatory inputs onto E"`
	ScaleP plast.ScaleParams    `view:"inline" desc:"scaling of PV-like inputs onto E -- mirrored direction"`
	ScaleS plast.ScaleParams    `view:"inline" desc:"scaling of SST-like inputs onto E -- mirrored direction"`
	SetPt  plast.SetPointParams `view:"inline" desc:"adaptive set-point and its regulator"`
}

func (pp *PlastParams) Defaults() {
	pp.Hebb.Defaults()
	pp.ScaleE.Defaults()
	pp.ScaleP.Defaults()
	pp.ScaleP.Dir = -1
	pp.ScaleS.Defaults()
	pp.ScaleS.Dir = -1
	pp.SetPt.Defaults()
	pp.Update()
}

// Update must be called after any changes to parameters
func (pp *PlastParams) Update() {
	pp.Hebb.Update()
	pp.ScaleE.Update()
	pp.ScaleP.Update()
	pp.ScaleS.Update()
	pp.SetPt.Update()
}

// BgParams are the constant background inputs
type BgParams struct {
	E        float64 `desc:"background input to excitatory units"`
	P        float64 `desc:"background input to PV-like units"`
	S        float64 `desc:"background input to SST-like units"`
	TopDownS float64 `def:"0" desc:"extra top-down input to SST-like units, added from conditioning offset on"`
}

// StimParams are the stimulus amplitudes onto the stimulated subnetwork:
// stimulus k targets subnetwork k.
type StimParams struct {
	E float64 `desc:"stimulus input to excitatory units"`
	P float64 `desc:"stimulus input to PV-like units"`
	S float64 `desc:"stimulus input to SST-like units -- positive or negative to modulate SST activity"`
}

// PopParams are all the parameters of the 3-population circuit
type PopParams struct {
	E     rate.Params `view:"inline" desc:"excitatory population"`
	P     rate.Params `view:"inline" desc:"PV-like fast inhibitory population"`
	S     rate.Params `view:"inline" desc:"SST-like slow inhibitory population"`
	Plast PlastParams `view:"inline" desc:"plasticity"`
	Bg    BgParams    `view:"inline" desc:"background inputs"`
	Stim  StimParams  `view:"inline" desc:"stimulus amplitudes"`

	EE WtParams `desc:"E to E, plastic"`
	EP WtParams `desc:"P to E, plastic, inhibitory"`
	ES WtParams `desc:"S to E, plastic, inhibitory"`
	PE WtParams `desc:"E to P"`
	PP WtParams `desc:"P to P, inhibitory"`
	PS WtParams `desc:"S to P, inhibitory"`
	SE WtParams `desc:"E to S"`
}

func (cp *PopParams) Defaults() {
	cp.E.Set(0.02, 1.5)
	cp.P.Set(0.005, 1.5)
	cp.S.Set(0.01, 1.5)
	cp.Plast.Defaults()
	cp.Bg = BgParams{E: 4.5, P: 3.2, S: 3}
	cp.Stim = StimParams{E: 1, P: 0.5, S: 0}
	cp.EE.Set(0.51, 0.51)
	cp.EP.Set(0.91, 0.41)
	cp.ES.Set(0.51, 0.31)
	cp.PE.Set(0.3, 0.1)
	cp.PP.Set(0.2, 0.1)
	cp.PS.Set(0.3, 0.1)
	cp.SE.Set(0.4, 0.1)
}

// Update must be called after any changes to parameters
func (cp *PopParams) Update() {
	cp.E.Update()
	cp.P.Update()
	cp.S.Update()
	cp.Plast.Update()
}

// Validate returns an error if the params cannot be integrated with step dt
func (cp *PopParams) Validate(dt float64) error {
	for _, rp := range []*rate.Params{&cp.E, &cp.P, &cp.S} {
		if err := rp.Validate(dt); err != nil {
			return err
		}
	}
	wts := map[string]*WtParams{"EE": &cp.EE, "EP": &cp.EP, "ES": &cp.ES, "PE": &cp.PE, "PP": &cp.PP, "PS": &cp.PS, "SE": &cp.SE}
	for nm, wp := range wts {
		if err := wp.Validate(nm); err != nil {
			return err
		}
	}
	return validatePlast(&cp.Plast)
}

// DendParams are all the parameters of the 3-compartment circuit, in which
// excitatory units have an apical (A) and a basal (B) dendritic compartment
// feeding the soma.
type DendParams struct {
	E     rate.Params `view:"inline" desc:"excitatory soma"`
	P     rate.Params `view:"inline" desc:"PV-like fast inhibitory population"`
	S     rate.Params `view:"inline" desc:"SST-like slow inhibitory population"`
	A     rate.Params `view:"inline" desc:"apical dendritic current -- integrates its input with the soma time constant"`
	B     rate.Params `view:"inline" desc:"basal dendritic current -- integrates its input with the soma time constant"`
	Plast PlastParams `view:"inline" desc:"plasticity"`
	Bg    BgParams    `view:"inline" desc:"background inputs to soma and interneurons"`
	Stim  StimParams  `view:"inline" desc:"stimulus amplitudes"`

	GA      float64 `def:"4" desc:"background input to the apical compartment"`
	GB      float64 `def:"6" desc:"background input to the basal compartment"`
	LambdaA float64 `def:"0.4" min:"0" desc:"contribution of the apical current to the somatic input"`
	LambdaB float64 `def:"0.3" min:"0" desc:"contribution of the basal current to the somatic input"`
	HebbA   float64 `def:"1" min:"0" desc:"Hebbian learning rate factor for E to apical weights"`
	HebbB   float64 `def:"0.5" min:"0" desc:"Hebbian learning rate factor for E to basal weights"`

	AE WtParams `desc:"E to apical, plastic"`
	BE WtParams `desc:"E to basal, plastic"`
	EP WtParams `desc:"P to soma, plastic, inhibitory"`
	AS WtParams `desc:"S to apical, plastic, inhibitory"`
	BS WtParams `desc:"S to basal, plastic, inhibitory"`
	PE WtParams `desc:"E to P"`
	PP WtParams `desc:"P to P, inhibitory"`
	PS WtParams `desc:"S to P, inhibitory"`
	SE WtParams `desc:"E to S"`
}

func (dp *DendParams) Defaults() {
	dp.E.Set(0.02, 1)
	dp.P.Set(0.005, 1.5)
	dp.S.Set(0.01, 1.5)
	dp.A.Set(0.02, 0)
	dp.B.Set(0.02, 0)
	dp.Plast.Defaults()
	dp.Plast.Hebb.Tau = 120
	dp.Plast.ScaleE.Tau = 2.5 * 3600
	dp.Plast.ScaleP.Tau = 6.5 * 3600
	dp.Plast.ScaleS.Tau = 2.5 * 3600
	dp.Plast.SetPt.K = 0.3
	dp.Plast.Update()
	dp.Bg = BgParams{E: 0, P: 4, S: 3.2}
	dp.Stim = StimParams{E: 2.5, P: 0.5, S: 0}
	dp.GA = 4
	dp.GB = 6
	dp.LambdaA = 0.4
	dp.LambdaB = 0.3
	dp.HebbA = 1
	dp.HebbB = 0.5
	dp.AE.Set(0.5, 0.3)
	dp.BE.Set(0.5, 0.3)
	dp.EP.Set(0.6, 0.18)
	dp.AS.Set(0.4, 0.18)
	dp.BS.Set(0, 0)
	dp.PE.Set(0.35, 0.10)
	dp.PP.Set(0.20, 0.10)
	dp.PS.Set(0.30, 0.10)
	dp.SE.Set(0.15, 0.10)
}

// Update must be called after any changes to parameters
func (dp *DendParams) Update() {
	dp.E.Update()
	dp.P.Update()
	dp.S.Update()
	dp.A.Update()
	dp.B.Update()
	dp.Plast.Update()
}

// Validate returns an error if the params cannot be integrated with step dt
func (dp *DendParams) Validate(dt float64) error {
	for _, rp := range []*rate.Params{&dp.E, &dp.P, &dp.S, &dp.A, &dp.B} {
		if err := rp.Validate(dt); err != nil {
			return err
		}
	}
	wts := map[string]*WtParams{"AE": &dp.AE, "BE": &dp.BE, "EP": &dp.EP, "AS": &dp.AS, "BS": &dp.BS,
		"PE": &dp.PE, "PP": &dp.PP, "PS": &dp.PS, "SE": &dp.SE}
	for nm, wp := range wts {
		if err := wp.Validate(nm); err != nil {
			return err
		}
	}
	return validatePlast(&dp.Plast)
}

func validatePlast(pp *PlastParams) error {
	if pp.Hebb.Tau <= 0 || pp.ScaleE.Tau <= 0 || pp.ScaleP.Tau <= 0 || pp.ScaleS.Tau <= 0 {
		return errPlastTau
	}
	if pp.SetPt.ThetaTau <= 0 || pp.SetPt.BetaTau <= 0 {
		return errPlastTau
	}
	return nil
}
