// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scaling is the overall repository for the rate-based cortical circuit
models of cell-type-specific synaptic scaling during memory consolidation.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* rate: rate-unit parameters, rectified leaky integration and the explosion /
extinction guards.

* plast: the plasticity mechanisms: Hebbian learning with a third-factor gate,
multiplicative synaptic scaling relative to an adaptive set-point, and the
set-point regulator, together with the flags that switch them on.

* sched: the stimulation protocol as a state machine over integration steps,
with the recording windows around conditioning, consolidation and testing.

* record: preallocated sample buffers for each recording window, exported as
etable.Table.

* circuit: the 3-population circuit (E, PV-like P, SST-like S in two mirrored
subnetworks) and the 3-compartment circuit with apical and basal dendrites,
the Sim driver that integrates them through the protocol, and the named
param sets.

* examples/scaling: runs the protocol from the command line and saves the
recorded windows.
*/
package scaling
