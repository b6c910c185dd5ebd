// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"fmt"

	"github.com/emer/emergent/params"
)

// ParamSets are the named parameter variants explored for the circuits.
// The "Pop" sheet applies to PopParams and the "Dend" sheet to DendParams;
// sets that only make sense for one circuit carry only its sheet.
// Base is always applied first by ApplyParams.
var ParamSets = params.Sets{
	{Name: "Base", Desc: "published defaults", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "set-point offset for the 3-population circuit",
				Params: params.Params{
					"PopParams.Plast.SetPt.K": "0.25",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "set-point offset for the 3-compartment circuit",
				Params: params.Params{
					"DendParams.Plast.SetPt.K": "0.3",
				}},
		},
	}},
	{Name: "K0", Desc: "regulator starts at the baseline activity", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "no offset",
				Params: params.Params{
					"PopParams.Plast.SetPt.K": "0",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "no offset",
				Params: params.Params{
					"DendParams.Plast.SetPt.K": "0",
				}},
		},
	}},
	{Name: "K05", Desc: "regulator starts well below the baseline activity", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "large offset",
				Params: params.Params{
					"PopParams.Plast.SetPt.K": "0.5",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "large offset",
				Params: params.Params{
					"DendParams.Plast.SetPt.K": "0.5",
				}},
		},
	}},
	{Name: "SSTUp", Desc: "stimulus also excites SST-like units", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "positive SST modulation",
				Params: params.Params{
					"PopParams.Stim.S": "0.5",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "positive SST modulation",
				Params: params.Params{
					"DendParams.Stim.S": "1.25",
				}},
		},
	}},
	{Name: "SSTDown", Desc: "stimulus inhibits SST-like units", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "negative SST modulation",
				Params: params.Params{
					"PopParams.Stim.S": "-0.5",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "negative SST modulation",
				Params: params.Params{
					"DendParams.Stim.S": "-1.25",
				}},
		},
	}},
	{Name: "LegacySST", Desc: "SST-to-E weights scale in the excitatory direction, as in the first model revision", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "non-mirrored SST scaling",
				Params: params.Params{
					"PopParams.Plast.ScaleS.Dir": "1",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "non-mirrored SST scaling",
				Params: params.Params{
					"DendParams.Plast.ScaleS.Dir": "1",
				}},
		},
	}},
	{Name: "Timescales", Desc: "faster set-point and a nearly instantaneous regulator", Sheets: params.Sheets{
		"Pop": &params.Sheet{
			{Sel: "PopParams", Desc: "12 h set-point, 36 s regulator",
				Params: params.Params{
					"PopParams.Plast.SetPt.ThetaTau": "43200",
					"PopParams.Plast.SetPt.BetaTau":  "36",
				}},
		},
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "12 h set-point, 36 s regulator",
				Params: params.Params{
					"DendParams.Plast.SetPt.ThetaTau": "43200",
					"DendParams.Plast.SetPt.BetaTau":  "36",
				}},
		},
	}},
	{Name: "DendRheobase", Desc: "published dendritic rheobases -- with the default weights the circuit falls silent", Sheets: params.Sheets{
		"Dend": &params.Sheet{
			{Sel: "DendParams", Desc: "apical and basal thresholds",
				Params: params.Params{
					"DendParams.A.Rheobase": "3",
					"DendParams.B.Rheobase": "9",
				}},
		},
	}},
}

// Updater is a parameter record with derived values
type Updater interface {
	Update()
}

// TypeName is the name PopParams selectors match
func (cp *PopParams) TypeName() string { return "PopParams" }

// Class is used for .Class selectors
func (cp *PopParams) Class() string { return "Circuit" }

// Name is used for #Name selectors
func (cp *PopParams) Name() string { return "Pop" }

// TypeName is the name DendParams selectors match
func (dp *DendParams) TypeName() string { return "DendParams" }

// Class is used for .Class selectors
func (dp *DendParams) Class() string { return "Circuit" }

// Name is used for #Name selectors
func (dp *DendParams) Name() string { return "Dend" }

// ApplyParams applies the Base set and then the named set from sets to obj,
// using the given sheet ("Pop" or "Dend"), and updates derived values.
// If setMsg is true a message is logged for each param that was set.
func ApplyParams(obj Updater, sets params.Sets, setNm, sheet string, setMsg bool) error {
	err := applySet(obj, sets, "Base", sheet, setMsg)
	if err == nil && setNm != "" && setNm != "Base" {
		err = applySet(obj, sets, setNm, sheet, setMsg)
	}
	obj.Update()
	return err
}

func applySet(obj Updater, sets params.Sets, setNm, sheet string, setMsg bool) error {
	pset, err := sets.SetByNameTry(setNm)
	if err != nil {
		return err
	}
	sht, ok := pset.Sheets[sheet]
	if !ok {
		return fmt.Errorf("circuit: param set %q has no %q sheet", setNm, sheet)
	}
	app, err := sht.Apply(obj, setMsg)
	if err != nil {
		return fmt.Errorf("circuit: param set %q: %w", setNm, err)
	}
	if !app {
		return fmt.Errorf("circuit: param set %q sheet %q does not apply to %T", setNm, sheet, obj)
	}
	return nil
}
