package podem

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// backtrace walks from an internal objective (line, value) back to a
// primary input, inverting the target value at every inverting gate and
// choosing, at each multi-input gate, the first input still holding X (the
// only input that can still influence the objective line's value — any
// other input is already determined, spec §9's "first-X-input backtrace
// choice"). The walk always finds an X input at each step: a gate's output
// can only be X itself if at least one of its inputs is.
func backtrace(line *circuit.Net, value logic.Value, values circuit.Assignment) (*circuit.Net, logic.Value) {
	for line.Role != circuit.PrimaryInput {
		drv := line.Driver
		if drv.Kind.Inverts() {
			value = logic.Not(value)
		}
		next := firstUnassignedInput(drv, values)
		if next == nil {
			next = drv.Inputs[0]
		}
		line = next
	}
	return line, value
}
