// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plast provides the plasticity mechanisms of the circuit models:
Hebbian learning on excitatory-to-excitatory weights, cell-type-specific
synaptic scaling of the inputs onto excitatory units, and the adaptive
set-point theta with its slow regulator beta.

All mechanisms are gated (see Gates): nothing changes before the gates
are armed at conditioning onset, and a closed gate returns its weight
unchanged so that runs without plasticity leave the weights exactly
as they started.
*/
package plast

// HebbParams are the Hebbian learning parameters for excitatory-to-excitatory weights.
type HebbParams struct {
	Tau float64 `def:"240,120" min:"0" desc:"time constant of Hebbian learning in seconds"`

	Dt float64 `view:"-" json:"-" xml:"-" yaml:"-" desc:"rate = 1 / Tau"`
}

func (hp *HebbParams) Defaults() {
	hp.Tau = 240
	hp.Update()
}

// Update must be called after any changes to parameters
func (hp *HebbParams) Update() {
	hp.Dt = 1 / hp.Tau
}

// DWt returns the Hebbian weight change over one step of size dt:
// post-synaptic activity relative to baseline times pre-synaptic activity.
// lrate is the gated learning rate (Gates.HebbRate times any per-compartment factor).
func (hp *HebbParams) DWt(post, pre, baseline, lrate, dt float64) float64 {
	if lrate == 0 {
		return 0
	}
	return lrate * dt * hp.Dt * (post - baseline) * pre
}

// ScaleParams are the synaptic scaling parameters for one class of inputs onto E.
type ScaleParams struct {
	Tau float64 `def:"28800" min:"0" desc:"time constant of synaptic scaling in seconds (8 hours by default)"`
	Dir float64 `def:"1,-1" desc:"direction of scaling: +1 grows the weight when activity is below the set-point (excitatory inputs), -1 shrinks it (mirrored, for inhibitory inputs)"`

	Dt float64 `view:"-" json:"-" xml:"-" yaml:"-" desc:"rate = 1 / Tau"`
}

func (sp *ScaleParams) Defaults() {
	sp.Tau = 8 * 3600
	sp.Dir = 1
	sp.Update()
}

// Update must be called after any changes to parameters
func (sp *ScaleParams) Update() {
	sp.Dt = 1 / sp.Tau
}

// Set sets the time constant and direction and updates derived values
func (sp *ScaleParams) Set(tau, dir float64) {
	sp.Tau = tau
	sp.Dir = dir
	sp.Update()
}

// Factor returns the scaling factor over one step of size dt, which is
// positive when act is below theta and negative above it.
// Returns 0 if the mechanism is off.
func (sp *ScaleParams) Factor(on bool, act, theta, dt float64) float64 {
	if !on {
		return 0
	}
	return dt * sp.Dt * (1 - act/theta)
}

// Apply returns weight w scaled multiplicatively by factor f in direction Dir
func (sp *ScaleParams) Apply(w, f float64) float64 {
	if f == 0 {
		return w
	}
	return w + sp.Dir*f*w
}

// SetPointParams are the parameters of the adaptive set-point theta and
// its regulator beta.
type SetPointParams struct {
	ThetaTau float64 `def:"86400" min:"0" desc:"time constant of the set-point in seconds (24 hours by default)"`
	BetaTau  float64 `def:"100800" min:"0" desc:"time constant of the set-point regulator in seconds (28 hours by default)"`
	K        float64 `def:"0.25,0.3" desc:"offset of the regulator below the baseline activity at conditioning onset"`
	Eps      float64 `def:"1e-10" min:"0" desc:"lower bound on theta, which divides activity in the scaling ratio"`

	ThetaDt float64 `view:"-" json:"-" xml:"-" yaml:"-" desc:"rate = 1 / ThetaTau"`
	BetaDt  float64 `view:"-" json:"-" xml:"-" yaml:"-" desc:"rate = 1 / BetaTau"`
}

func (sp *SetPointParams) Defaults() {
	sp.ThetaTau = 24 * 3600
	sp.BetaTau = 28 * 3600
	sp.K = 0.25
	sp.Eps = 1e-10
	sp.Update()
}

// Update must be called after any changes to parameters
func (sp *SetPointParams) Update() {
	sp.ThetaDt = 1 / sp.ThetaTau
	sp.BetaDt = 1 / sp.BetaTau
}

// Init returns the set-point and regulator captured from baseline activity,
// within the same bounds as Clamp: beta is 0 when K exceeds the baseline.
func (sp *SetPointParams) Init(baseline float64) (theta, beta float64) {
	theta, beta = baseline, baseline-sp.K
	sp.Clamp(&theta, &beta)
	return
}

// Clamp keeps beta >= 0 and theta >= Eps
func (sp *SetPointParams) Clamp(theta, beta *float64) {
	if *beta < 0 {
		*beta = 0
	}
	if *theta < sp.Eps {
		*theta = sp.Eps
	}
}

// Step updates theta and beta for one step of size dt given activity act.
// The regulator moves first and the set-point uses its new value.
// Bounds hold before and after the update.
func (sp *SetPointParams) Step(theta, beta *float64, act, dt float64, g *Gates) {
	sp.Clamp(theta, beta)
	if !g.Flags.SetPoint {
		return
	}
	*beta += dt * sp.BetaDt * (act - *beta)
	*theta += dt * sp.ThetaDt * (-B2F(g.Theta.Shift)*(*theta-*beta) + B2F(g.Theta.Local)*(act-*theta))
	sp.Clamp(theta, beta)
}

// ClampWt returns w bounded below by 0
func ClampWt(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}
