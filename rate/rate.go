// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rate provides the leaky threshold-linear rate unit used for every
population (E, P, S) and dendritic compartment of the circuit models.

The rate r of a unit with net input I follows

	tau dr/dt = -r + [I - rheobase]+

which is integrated with a forward-Euler step of size dt.  The result is
clamped to be non-negative after every step.
*/
package rate

import "fmt"

// Params are the threshold-linear rate parameters for one population or compartment.
type Params struct {
	Tau      float64 `def:"0.02,0.005,0.01" min:"0" desc:"time constant in seconds: 20 msec for excitatory, 5 msec for PV-like, 10 msec for SST-like populations"`
	Rheobase float64 `def:"1.5" desc:"minimum net input required for a non-zero rate -- input below this is rectified to zero"`

	Dt float64 `view:"-" json:"-" xml:"-" yaml:"-" desc:"rate = 1 / Tau"`
}

func (rp *Params) Defaults() {
	rp.Tau = 0.02
	rp.Rheobase = 1.5
	rp.Update()
}

// Update must be called after any changes to parameters
func (rp *Params) Update() {
	rp.Dt = 1 / rp.Tau
}

// Set sets the time constant and rheobase and updates derived values
func (rp *Params) Set(tau, rheobase float64) {
	rp.Tau = tau
	rp.Rheobase = rheobase
	rp.Update()
}

// Validate returns an error if the params cannot be integrated with step dt.
func (rp *Params) Validate(dt float64) error {
	if rp.Tau <= 0 {
		return fmt.Errorf("rate: Tau must be > 0, is %g", rp.Tau)
	}
	if dt >= rp.Tau {
		return fmt.Errorf("rate: time step %g must be smaller than Tau %g", dt, rp.Tau)
	}
	return nil
}

// Rect is the threshold-linear transfer function: max(0, net - Rheobase)
func (rp *Params) Rect(net float64) float64 {
	net -= rp.Rheobase
	if net < 0 {
		return 0
	}
	return net
}

// Step returns the rate after one Euler step of size dt from rate r
// driven by total net input net.  The result is never negative.
func (rp *Params) Step(r, net, dt float64) float64 {
	nr := r + dt*rp.Dt*(-r+rp.Rect(net))
	if nr < 0 {
		return 0
	}
	return nr
}
