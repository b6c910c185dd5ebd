// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

// Gates is the plasticity gate state during a run.  All mechanisms are off
// until Arm is called at conditioning onset, which snapshots the configured
// flags.  Learn is the three-factor learning-rate gate.
type Gates struct {
	Flags Flags      `inactive:"+" desc:"snapshot of the flags taken when armed -- all off before"`
	Theta ThetaFlags `inactive:"+" desc:"snapshot of the set-point term switches taken when armed"`
	Armed bool       `inactive:"+" desc:"true once conditioning has started"`
	Learn bool       `inactive:"+" desc:"learning-rate gate for Hebbian learning"`
}

// Reset turns all gates off
func (g *Gates) Reset() {
	*g = Gates{}
}

// Arm snapshots the flags at conditioning onset and opens the learning-rate
// gate if Hebbian learning is enabled.
func (g *Gates) Arm(f Flags, th ThetaFlags) {
	g.Flags = f
	g.Theta = th
	g.Armed = true
	if f.Hebb {
		g.Learn = true
	}
}

// Offset is called at conditioning offset: the third factor closes the
// learning-rate gate.
func (g *Gates) Offset() {
	if g.Flags.ThreeFactor {
		g.Learn = false
	}
}

// HebbRate returns the Hebbian learning rate multiplier: 1 while
// Hebbian learning is on and the learning-rate gate is open, else 0.
func (g *Gates) HebbRate() float64 {
	if g.Flags.Hebb && g.Learn {
		return 1
	}
	return 0
}
