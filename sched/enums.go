// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import "github.com/goki/ki/kit"

// Phases are the phases of the conditioning protocol
type Phases int32

//go:generate stringer -type=Phases

var KiT_Phases = kit.Enums.AddEnum(PhasesN, kit.NotBitFlag, nil)

func (ev Phases) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Phases) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The protocol phases
const (
	// Idle is the initial settling period before the protocol starts
	Idle Phases = iota

	// Baseline1 is the spontaneous activity before conditioning
	Baseline1

	// Conditioning is while the first stimulus is on
	Conditioning

	// Consolidation is the long period between conditioning and testing
	Consolidation

	// Baseline3 is the spontaneous activity just before testing
	Baseline3

	// Testing is while the second stimulus is on
	Testing

	// Done is after the last stimulus
	Done

	PhasesN
)

// Windows are the recording windows, each with its own sampling period and buffer
type Windows int32

//go:generate stringer -type=Windows

var KiT_Windows = kit.Enums.AddEnum(WindowsN, kit.NotBitFlag, nil)

func (ev Windows) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Windows) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The recording windows
const (
	// CondWin spans conditioning with a margin on either side
	CondWin Windows = iota

	// ConsolWin spans the consolidation period from conditioning offset to testing onset
	ConsolWin

	// TestWin spans testing with a margin on either side
	TestWin

	WindowsN
)
