// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/plast"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/sched"
	"github.com/emer/emergent/params"
)

func TestApplyParams(t *testing.T) {
	cp := &PopParams{}
	cp.Defaults()
	if err := ApplyParams(cp, ParamSets, "K05", "Pop", false); err != nil {
		t.Fatal(err)
	}
	if cp.Plast.SetPt.K != 0.5 {
		t.Errorf("K05 K: %v\n", cp.Plast.SetPt.K)
	}
	if err := ApplyParams(cp, ParamSets, "LegacySST", "Pop", false); err != nil {
		t.Fatal(err)
	}
	if cp.Plast.ScaleS.Dir != 1 {
		t.Errorf("LegacySST ScaleS.Dir: %v\n", cp.Plast.ScaleS.Dir)
	}
	// Base restores K before the named set is applied
	if cp.Plast.SetPt.K != 0.25 {
		t.Errorf("Base K: %v\n", cp.Plast.SetPt.K)
	}

	cp.Defaults()
	if err := ApplyParams(cp, ParamSets, "Timescales", "Pop", false); err != nil {
		t.Fatal(err)
	}
	if cp.Plast.SetPt.ThetaTau != 43200 || cp.Plast.SetPt.BetaTau != 36 {
		t.Errorf("Timescales: %v %v\n", cp.Plast.SetPt.ThetaTau, cp.Plast.SetPt.BetaTau)
	}
	if cp.Plast.SetPt.BetaDt != 1.0/36 {
		t.Errorf("Timescales derived BetaDt not updated: %v\n", cp.Plast.SetPt.BetaDt)
	}

	dp := &DendParams{}
	dp.Defaults()
	if err := ApplyParams(dp, ParamSets, "SSTUp", "Dend", false); err != nil {
		t.Fatal(err)
	}
	if dp.Stim.S != 1.25 {
		t.Errorf("Dend SSTUp Stim.S: %v\n", dp.Stim.S)
	}
	if dp.Plast.SetPt.K != 0.3 {
		t.Errorf("Dend Base K: %v\n", dp.Plast.SetPt.K)
	}

	if err := ApplyParams(cp, ParamSets, "NoSuchSet", "Pop", false); err == nil {
		t.Errorf("unknown param set should fail\n")
	}
	if err := ApplyParams(cp, ParamSets, "K0", "Spiking", false); err == nil {
		t.Errorf("unknown sheet should fail\n")
	}
	// selector matches PopParams only
	dp.Defaults()
	if err := ApplyParams(dp, ParamSets, "K0", "Pop", false); err == nil {
		t.Errorf("Pop sheet applied to DendParams should fail\n")
	}

	bad := params.Sets{
		{Name: "Base", Desc: "misspelled path", Sheets: params.Sheets{
			"Pop": &params.Sheet{
				{Sel: "PopParams", Desc: "no such field",
					Params: params.Params{
						"PopParams.Plast.SetPt.Kappa": "0.4",
					}},
			},
		}},
	}
	cp.Defaults()
	if err := ApplyParams(cp, bad, "", "Pop", false); err == nil {
		t.Errorf("param path to a missing field should fail\n")
	}
}

func TestDendRheobase(t *testing.T) {
	dp := &DendParams{}
	dp.Defaults()
	if dp.A.Rheobase != 0 || dp.B.Rheobase != 0 {
		t.Errorf("default dendritic rheobases: %v %v\n", dp.A.Rheobase, dp.B.Rheobase)
	}
	if err := ApplyParams(dp, ParamSets, "DendRheobase", "Dend", false); err != nil {
		t.Fatal(err)
	}
	if dp.A.Rheobase != 3 || dp.B.Rheobase != 9 {
		t.Errorf("DendRheobase: %v %v\n", dp.A.Rheobase, dp.B.Rheobase)
	}
	cp := &PopParams{}
	cp.Defaults()
	if err := ApplyParams(cp, ParamSets, "DendRheobase", "Pop", false); err == nil {
		t.Errorf("DendRheobase has no Pop sheet and should fail\n")
	}
}

func TestComps(t *testing.T) {
	nms := []string{"CompA", "CompB", "CompE"}
	for c := CompA; c < CompsN; c++ {
		if c.String() != nms[c] {
			t.Errorf("Comps String err: idx: %v, %v, cor: %v\n", int(c), c.String(), nms[c])
		}
		var fc Comps
		if err := fc.FromString(nms[c]); err != nil || fc != c {
			t.Errorf("Comps FromString err: %v, %v, %v\n", nms[c], fc, err)
		}
	}
	b, err := CompB.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var jc Comps
	if err := jc.UnmarshalJSON(b); err != nil || jc != CompB {
		t.Errorf("Comps JSON: %s -> %v, %v\n", b, jc, err)
	}
}

func TestYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pop.yaml")
	if err := os.WriteFile(fn, []byte("plast:\n  setpt:\n    k: 0.4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cp := &PopParams{}
	cp.Defaults()
	if err := OpenYAML(cp, fn); err != nil {
		t.Fatal(err)
	}
	if cp.Plast.SetPt.K != 0.4 {
		t.Errorf("K from file: %v\n", cp.Plast.SetPt.K)
	}
	if cp.E.Tau != 0.02 || cp.EE.Within != 0.51 {
		t.Errorf("fields not in file should keep defaults: %v %v\n", cp.E.Tau, cp.EE.Within)
	}

	out := filepath.Join(t.TempDir(), "out.yaml")
	cp.Bg.TopDownS = 0.7
	if err := SaveYAML(cp, out); err != nil {
		t.Fatal(err)
	}
	rd := &PopParams{}
	rd.Defaults()
	if err := OpenYAML(rd, out); err != nil {
		t.Fatal(err)
	}
	if rd.Bg.TopDownS != 0.7 || rd.Plast.SetPt.K != 0.4 {
		t.Errorf("saved params not read back: %v %v\n", rd.Bg.TopDownS, rd.Plast.SetPt.K)
	}

	if err := OpenYAML(rd, filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Errorf("missing file should fail\n")
	}
}

func TestValidateParams(t *testing.T) {
	cp := &PopParams{}
	cp.Defaults()
	if err := cp.Validate(1.0e-4); err != nil {
		t.Errorf("defaults should be valid: %v\n", err)
	}
	cp.EP.Cross = -0.1
	if err := cp.Validate(1.0e-4); err == nil {
		t.Errorf("negative weight should fail\n")
	}
	cp.Defaults()
	cp.Plast.ScaleE.Tau = 0
	if err := cp.Validate(1.0e-4); err == nil {
		t.Errorf("zero scaling Tau should fail\n")
	}

	dp := &DendParams{}
	dp.Defaults()
	if err := dp.Validate(1.0e-4); err != nil {
		t.Errorf("dend defaults should be valid: %v\n", err)
	}
	if err := dp.Validate(0.01); err == nil {
		t.Errorf("time step above P Tau should fail\n")
	}
}

func TestProtocol(t *testing.T) {
	pr := &Protocol{}
	pr.Defaults()
	if ns := pr.NSteps(); ns != 144520000 {
		t.Errorf("NSteps: %v\n", ns)
	}
	sim, err := pr.NewSim(NewCircuit(), plast.AllFlags(), plast.DefaultTheta())
	if err != nil {
		t.Fatal(err)
	}
	cor := [sched.WindowsN]int{12500, 720, 12500}
	for w := sched.CondWin; w < sched.WindowsN; w++ {
		if nc := sim.Rec.Bufs[w].Cap(); nc != cor[w] {
			t.Errorf("%v samples: %v, cor: %v\n", w, nc, cor[w])
		}
	}

	pr.Hours = 0
	if _, err := pr.NewSim(NewCircuit(), plast.AllFlags(), plast.DefaultTheta()); err == nil {
		t.Errorf("overlapping conditioning and testing windows should fail\n")
	}
}

func TestAvThreshold(t *testing.T) {
	pr := &Protocol{}
	pr.Defaults()
	pr.Dt = 1.0e-3
	thr, err := pr.AvThreshold(NewCircuit())
	if err != nil {
		t.Fatal(err)
	}
	if dif := math.Abs(thr - 1.17236); dif > 1.0e-3 {
		t.Errorf("aversion threshold: %v, cor: %v\n", thr, 1.17236)
	}
	if !Specific(1.1, thr) {
		t.Errorf("baseline response should be specific\n")
	}
	if Specific(thr+0.1, thr) {
		t.Errorf("response above threshold should generalize\n")
	}
}
