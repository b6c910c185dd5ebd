// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import "fmt"

// NSub is the number of mirrored subnetworks
const NSub = 2

// Mat2 is a 2x2 weight matrix between the two subnetworks, indexed [post][pre]:
// the diagonal holds within-subnetwork weights, the off-diagonal cross weights.
type Mat2 [NSub][NSub]float64

// Sum returns the weighted input to post-synaptic subnetwork post from
// pre-synaptic rates r
func (m *Mat2) Sum(post int, r [NSub]float64) float64 {
	return m[post][0]*r[0] + m[post][1]*r[1]
}

// WtParams are the initial values of one class of weights
type WtParams struct {
	Within float64 `min:"0" desc:"weight within the same subnetwork"`
	Cross  float64 `min:"0" desc:"weight between the two subnetworks"`
}

// Set sets the within and cross weights
func (wp *WtParams) Set(within, cross float64) {
	wp.Within = within
	wp.Cross = cross
}

// Mat returns the symmetric weight matrix
func (wp *WtParams) Mat() Mat2 {
	return Mat2{{wp.Within, wp.Cross}, {wp.Cross, wp.Within}}
}

// Validate returns an error if a weight is negative
func (wp *WtParams) Validate(nm string) error {
	if wp.Within < 0 || wp.Cross < 0 {
		return fmt.Errorf("circuit: %s weights must be >= 0, are %g, %g", nm, wp.Within, wp.Cross)
	}
	return nil
}
