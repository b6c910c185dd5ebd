// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"strings"
	"testing"

	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/sched"
	"github.com/goki/mat32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func testRecorder() *Recorder {
	return New([]string{"E1", "E2"}, []string{"EE11"}, [sched.WindowsN]int{10, 100, 10}, [sched.WindowsN]int{5, 2, 0})
}

func TestValidate(t *testing.T) {
	rc := testRecorder()
	if err := rc.Validate([sched.WindowsN]int{5, 2, 0}); err != nil {
		t.Error(err)
	}
	if err := rc.Validate([sched.WindowsN]int{6, 2, 0}); err == nil {
		t.Errorf("Validate should fail on sample count mismatch\n")
	}
	rc.StateVars = append(rc.StateVars, "P1")
	if err := rc.Validate([sched.WindowsN]int{5, 2, 0}); err == nil {
		t.Errorf("Validate should fail on variable count mismatch\n")
	}
	rc = testRecorder()
	rc.Periods[sched.TestWin] = 0
	if err := rc.Validate([sched.WindowsN]int{5, 2, 0}); err == nil {
		t.Errorf("Validate should fail on zero period\n")
	}
}

func TestDue(t *testing.T) {
	rc := testRecorder()
	win := sched.Window{Start: 20, End: 70}
	var due []int
	for step := 0; step < 100; step++ {
		if rc.Due(sched.CondWin, step, win) {
			due = append(due, step)
		}
	}
	cor := []int{20, 30, 40, 50, 60}
	if len(due) != len(cor) {
		t.Fatalf("Due steps: %v, cor: %v\n", due, cor)
	}
	for i := range cor {
		if due[i] != cor[i] {
			t.Errorf("Due err: idx: %v, step: %v, cor: %v\n", i, due[i], cor[i])
		}
	}
	if n := win.NSamples(10, 100); n != len(cor) {
		t.Errorf("NSamples: %v does not match Due count: %v\n", n, len(cor))
	}
}

func TestRecord(t *testing.T) {
	rc := testRecorder()
	for i := 0; i < 3; i++ {
		rc.Record(sched.CondWin, []float64{float64(i), 0.1 * float64(i)}, []float64{0.51 + float64(i)})
	}
	if rc.N[sched.CondWin] != 3 || rc.N[sched.ConsolWin] != 0 {
		t.Errorf("N: %v\n", rc.N)
	}
	for i := 0; i < 3; i++ {
		if v := rc.Value(sched.CondWin, 0, i); v != float32(i) {
			t.Errorf("Value E1 err: idx: %v, v: %v\n", i, v)
		}
		cor := 0.1 * float32(i)
		if dif := mat32.Abs(rc.Value(sched.CondWin, 1, i) - cor); dif > difTol {
			t.Errorf("Value E2 err: idx: %v, v: %v, cor: %v\n", i, rc.Value(sched.CondWin, 1, i), cor)
		}
		cor = 0.51 + float32(i)
		if dif := mat32.Abs(rc.Wt(sched.CondWin, 0, i) - cor); dif > difTol {
			t.Errorf("Wt err: idx: %v, v: %v, cor: %v\n", i, rc.Wt(sched.CondWin, 0, i), cor)
		}
	}
	// row-major [vars, samples]
	if v := rc.Bufs[sched.CondWin].State.Values[5+2]; v != rc.Value(sched.CondWin, 1, 2) {
		t.Errorf("buffer layout err: %v\n", v)
	}

	dt := rc.Table(sched.CondWin, 0, 0.002)
	if dt.Rows != 3 {
		t.Errorf("Table rows: %v\n", dt.Rows)
	}
	if tm := dt.CellFloat("Time", 2); mat32.Abs(float32(tm)-0.004) > difTol {
		t.Errorf("Table Time: %v\n", tm)
	}
	if v := dt.CellFloat("EE11", 1); mat32.Abs(float32(v)-1.51) > difTol {
		t.Errorf("Table EE11: %v\n", v)
	}

	rc.Reset()
	if rc.N[sched.CondWin] != 0 {
		t.Errorf("Reset: %v\n", rc.N)
	}
}

func TestSizeReport(t *testing.T) {
	rc := testRecorder()
	rpt := rc.SizeReport()
	if !strings.Contains(rpt, "CondWin") || !strings.Contains(rpt, "Total") {
		t.Errorf("SizeReport:\n%v\n", rpt)
	}
}
