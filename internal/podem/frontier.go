package podem

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// dFrontier returns every gate whose output is still unassigned (X) but
// which has at least one faulty (D/D') input. A single-input gate (BUF/INV)
// can never appear here: its output is a deterministic function of its one
// input, so a faulty input always yields a faulty (never X) output.
func dFrontier(c *circuit.Circuit, values circuit.Assignment) []*circuit.Gate {
	var frontier []*circuit.Gate
	for _, gate := range c.Gates {
		if values[gate.Output.ID] != logic.X {
			continue
		}
		if gate.HasFaultyInput(values) {
			frontier = append(frontier, gate)
		}
	}
	return frontier
}

// firstUnassignedInput returns the first input of g still holding X, or nil
// if every input is already determined.
func firstUnassignedInput(g *circuit.Gate, values circuit.Assignment) *circuit.Net {
	for _, in := range g.Inputs {
		if values[in.ID] == logic.X {
			return in
		}
	}
	return nil
}
