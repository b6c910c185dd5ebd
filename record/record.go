// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package record provides the decimating recorder that samples model state
and plastic weights into preallocated buffers, one per recording window
(see sched.Windows), each with its own sampling period.

Buffers are etensor.Float32 of shape [vars, samples], allocated exactly
once from the expected sample counts, so nothing is allocated while a
run is in progress.  Filled columns can be exported as an etable.Table.
*/
package record

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/comp-neural-circuits/cell-type-specific-synaptic-scaling/sched"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Buffer holds the samples of one recording window
type Buffer struct {
	State *etensor.Float32 `desc:"state samples: rates, currents, set-points, shape [vars, samples]"`
	Wts   *etensor.Float32 `desc:"plastic weight samples, shape [vars, samples]"`
}

// Cap returns the number of samples the buffer can hold
func (bf *Buffer) Cap() int {
	return bf.State.Dim(1)
}

// Recorder samples into one Buffer per recording window
type Recorder struct {
	StateVars []string               `desc:"names of the recorded state variables, one row each"`
	WtVars    []string               `desc:"names of the recorded weight variables, one row each"`
	Periods   [sched.WindowsN]int    `desc:"sampling period in steps for each window"`
	Bufs      [sched.WindowsN]Buffer `desc:"sample buffers for each window"`
	N         [sched.WindowsN]int    `inactive:"+" desc:"number of samples written so far in each window -- less than the buffer size if a run ended early"`
}

// New returns a recorder for given variables and sampling periods,
// with buffers sized to hold counts samples in each window.
func New(stateVars, wtVars []string, periods, counts [sched.WindowsN]int) *Recorder {
	rc := &Recorder{StateVars: stateVars, WtVars: wtVars, Periods: periods}
	for w := range rc.Bufs {
		rc.Bufs[w].State = etensor.NewFloat32([]int{len(stateVars), counts[w]}, nil, []string{"Var", "Sample"})
		rc.Bufs[w].Wts = etensor.NewFloat32([]int{len(wtVars), counts[w]}, nil, []string{"Var", "Sample"})
	}
	return rc
}

// Validate returns an error if the buffers do not match the variables and
// the expected sample counts exactly, or a period is not positive.
func (rc *Recorder) Validate(counts [sched.WindowsN]int) error {
	ns := len(rc.StateVars)
	nw := len(rc.WtVars)
	for w := range rc.Bufs {
		wn := sched.Windows(w)
		if rc.Periods[w] <= 0 {
			return fmt.Errorf("record: %v sampling period must be > 0, is %d", wn, rc.Periods[w])
		}
		bf := &rc.Bufs[w]
		if bf.State == nil || bf.Wts == nil {
			return fmt.Errorf("record: %v buffers not allocated", wn)
		}
		if bf.State.Dim(0) != ns || bf.State.Dim(1) != counts[w] {
			return fmt.Errorf("record: %v state buffer is [%d, %d], need [%d, %d]", wn, bf.State.Dim(0), bf.State.Dim(1), ns, counts[w])
		}
		if bf.Wts.Dim(0) != nw || bf.Wts.Dim(1) != counts[w] {
			return fmt.Errorf("record: %v weight buffer is [%d, %d], need [%d, %d]", wn, bf.Wts.Dim(0), bf.Wts.Dim(1), nw, counts[w])
		}
	}
	return nil
}

// Reset sets all write indexes back to 0, without clearing the buffers
func (rc *Recorder) Reset() {
	for w := range rc.N {
		rc.N[w] = 0
	}
}

// Due returns true if a sample of window w should be taken at step
func (rc *Recorder) Due(w sched.Windows, step int, win sched.Window) bool {
	return win.In(step) && (step-win.Start)%rc.Periods[w] == 0
}

// Record writes state and wts as the next sample of window w
func (rc *Recorder) Record(w sched.Windows, state, wts []float64) {
	bf := &rc.Bufs[w]
	n := rc.N[w]
	nc := bf.Cap()
	for i, v := range state {
		bf.State.Values[i*nc+n] = float32(v)
	}
	for i, v := range wts {
		bf.Wts.Values[i*nc+n] = float32(v)
	}
	rc.N[w]++
}

// Value returns sample i of state variable vi in window w
func (rc *Recorder) Value(w sched.Windows, vi, i int) float32 {
	bf := &rc.Bufs[w]
	return bf.State.Values[vi*bf.Cap()+i]
}

// Wt returns sample i of weight variable vi in window w
func (rc *Recorder) Wt(w sched.Windows, vi, i int) float32 {
	bf := &rc.Bufs[w]
	return bf.Wts.Values[vi*bf.Cap()+i]
}

// Table returns the filled samples of window w as a table with one row per
// sample: a Time column starting at t0 in steps of tstep seconds, then
// one column per state and weight variable.
func (rc *Recorder) Table(w sched.Windows, t0, tstep float64) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", w.String())
	dt.SetMetaData("desc", "samples of the "+w.String()+" recording window")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
	}
	for _, nm := range rc.StateVars {
		sch = append(sch, etable.Column{nm, etensor.FLOAT32, nil, nil})
	}
	for _, nm := range rc.WtVars {
		sch = append(sch, etable.Column{nm, etensor.FLOAT32, nil, nil})
	}
	n := rc.N[w]
	dt.SetFromSchema(sch, n)
	for i := 0; i < n; i++ {
		dt.SetCellFloat("Time", i, t0+float64(i)*tstep)
		for vi, nm := range rc.StateVars {
			dt.SetCellFloat(nm, i, float64(rc.Value(w, vi, i)))
		}
		for vi, nm := range rc.WtVars {
			dt.SetCellFloat(nm, i, float64(rc.Wt(w, vi, i)))
		}
	}
	return dt
}

// SizeReport returns a string reporting the size of each window's buffers,
// and total memory footprint.
func (rc *Recorder) SizeReport() string {
	var b strings.Builder
	tot := 0
	for w := range rc.Bufs {
		bf := &rc.Bufs[w]
		nc := bf.Cap()
		mem := 4 * (len(bf.State.Values) + len(bf.Wts.Values))
		tot += mem
		fmt.Fprintf(&b, "%14s:\t Samples: %d\t Filled: %d\t Period: %d\t Mem: %v\n", sched.Windows(w), nc, rc.N[w], rc.Periods[w], (datasize.ByteSize)(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Vars: %d\t Wts: %d\t Mem: %v\n", "Total", len(rc.StateVars), len(rc.WtVars), (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}
