// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rate

import "github.com/goki/ki/kit"

// MaxRate is the excitatory rate above which a run is considered to have exploded.
const MaxRate = 1000

// Status is the state of a run as judged from the probed excitatory rate
type Status int32

//go:generate stringer -type=Status

var KiT_Status = kit.Enums.AddEnum(StatusN, kit.NotBitFlag, nil)

func (ev Status) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Status) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Running means the rate is within the allowed range
	Running Status = iota

	// Exploded means the rate exceeded MaxRate -- numerical divergence
	Exploded

	// Extinct means the rate fell to exactly zero
	Extinct

	// Completed means the run went through all requested steps
	Completed

	StatusN
)

// Check returns the guard status for excitatory rate r.
// Anything other than Running is a hard stop.
func Check(r float64) Status {
	switch {
	case r > MaxRate:
		return Exploded
	case r == 0:
		return Extinct
	}
	return Running
}
