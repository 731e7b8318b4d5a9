package podem

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// objective picks the next (line, value) pair to pursue, per spec §4.5: if
// the fault is not yet excited, the objective is exciting it at its own
// net; otherwise it is propagating through some D-frontier gate, chosen
// here as the first one, by driving one of its unassigned inputs to that
// gate's non-controlling value. frontier must be dFrontier(c, values);
// passed in so callers that already computed it (to decide whether this
// branch has failed) don't recompute it.
func objective(c *circuit.Circuit, fault circuit.Fault, values circuit.Assignment, frontier []*circuit.Gate) (*circuit.Net, logic.Value, bool) {
	faultVal := values[fault.NetID]
	if !faultVal.IsFaulty() {
		return c.Net(fault.NetID), fault.ExcitingValue(), true
	}

	gate := frontier[0]
	in := firstUnassignedInput(gate, values)
	if in == nil {
		return nil, logic.X, false
	}
	nonControlling, _ := gate.Kind.NonControlling()
	return in, nonControlling, true
}
