// Package sim implements the fault-free simulator and the deductive fault
// simulator (spec §4.3's fault-free wrapper and §4.4). Both are pure
// functions of (Circuit, vector).
package sim

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/netlist"
)

// SimulateInput evaluates a fully-binary primary-input vector and returns
// the value of every net. X is not permitted in vector (spec §6: "a bare
// binary string is accepted for the fault-free ... simulator[s]").
func SimulateInput(c *circuit.Circuit, vector string) (circuit.Assignment, error) {
	assignment, err := netlist.ParseVector(c, vector, false)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(assignment)
}
