// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plast

import (
	"fmt"
	"strings"
)

// Flags switch the plasticity mechanisms on or off.  They only take effect
// once armed at conditioning onset (see Gates).
type Flags struct {
	Hebb        bool `desc:"Hebbian learning on excitatory-to-excitatory weights"`
	ThreeFactor bool `desc:"third factor: Hebbian learning is turned off again at conditioning offset"`
	SetPoint    bool `desc:"adaptive set-point (theta) and set-point regulator (beta)"`
	EScale      bool `desc:"synaptic scaling of excitatory inputs onto E"`
	PScale      bool `desc:"synaptic scaling of PV-like inhibitory inputs onto E"`
	SScale      bool `desc:"synaptic scaling of SST-like inhibitory inputs onto E"`
}

// AllFlags returns flags with every mechanism on -- the full model.
func AllFlags() Flags {
	return Flags{Hebb: true, ThreeFactor: true, SetPoint: true, EScale: true, PScale: true, SScale: true}
}

// FlagsFromTuple sets flags from the 0 / 1 tuple in the order
// Hebb, ThreeFactor, SetPoint, EScale, PScale, SScale.
func FlagsFromTuple(t [6]int) Flags {
	return Flags{Hebb: t[0] != 0, ThreeFactor: t[1] != 0, SetPoint: t[2] != 0,
		EScale: t[3] != 0, PScale: t[4] != 0, SScale: t[5] != 0}
}

// Tuple returns the flags as a 0 / 1 tuple, see FlagsFromTuple
func (f Flags) Tuple() [6]int {
	return [6]int{b2i(f.Hebb), b2i(f.ThreeFactor), b2i(f.SetPoint), b2i(f.EScale), b2i(f.PScale), b2i(f.SScale)}
}

// cases are the named flag combinations of the published figures
var cases = []struct {
	tuple     [6]int
	id, title string
}{
	{[6]int{0, 0, 0, 0, 0, 0}, "0", "No plasticity"},
	{[6]int{1, 1, 1, 1, 1, 1}, "1", "Full model"},
	{[6]int{1, 1, 1, 0, 1, 1}, "2", "E off (P+S)"},
	{[6]int{1, 1, 1, 1, 0, 1}, "3", "P off (E+S)"},
	{[6]int{1, 1, 1, 1, 1, 0}, "4", "S off (E+P)"},
	{[6]int{1, 1, 1, 1, 0, 0}, "5", "only E on"},
	{[6]int{1, 1, 1, 0, 1, 0}, "6", "only P on"},
	{[6]int{1, 1, 1, 0, 0, 1}, "7", "only S on"},
	{[6]int{1, 1, 1, 0, 0, 0}, "8", "No scaling"},
	{[6]int{1, 1, 0, 1, 1, 1}, "9", "No beta active - full model"},
}

// Case returns the id and title used to label runs with these flags.
// Combinations outside the published set get id "x" and a title
// listing the active mechanisms.
func (f Flags) Case() (id, title string) {
	tp := f.Tuple()
	for _, c := range cases {
		if c.tuple == tp {
			return c.id, c.title
		}
	}
	var on []string
	nms := []string{"Hebb", "ThreeFactor", "SetPoint", "EScale", "PScale", "SScale"}
	for i, v := range tp {
		if v != 0 {
			on = append(on, nms[i])
		}
	}
	return "x", strings.Join(on, "+")
}

// CaseFlags returns the flags of the published case with given id
func CaseFlags(id string) (Flags, error) {
	for _, c := range cases {
		if c.id == id {
			return FlagsFromTuple(c.tuple), nil
		}
	}
	return Flags{}, fmt.Errorf("plast: no plasticity case %q", id)
}

// ThetaFlags gate the two terms of the set-point update:
// Shift pulls theta toward the regulator beta, Local tracks current activity.
type ThetaFlags struct {
	Shift bool `def:"true" desc:"shift theta toward the regulator beta"`
	Local bool `def:"true" desc:"track current activity"`
}

// DefaultTheta returns both set-point terms on
func DefaultTheta() ThetaFlags {
	return ThetaFlags{Shift: true, Local: true}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// B2F returns 1 for true and 0 for false
func B2F(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
