package netlist

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/atpgerr"
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// ParseVector parses a primary-input vector string (one character per
// primary input, in declared order) into a circuit.Assignment keyed by net
// ID. allowX controls whether 'X'/'x' characters are accepted: the
// fault-free and deductive simulators require a fully binary vector
// (allowX=false); allowX=true also accepts X, the form PODEM's X-padded
// result vectors take.
func ParseVector(c *circuit.Circuit, vector string, allowX bool) (circuit.Assignment, error) {
	if len(vector) != len(c.Inputs) {
		return nil, errors.Wrapf(atpgerr.ErrInvalidVector,
			"vector length %d does not match %d primary inputs", len(vector), len(c.Inputs))
	}

	assignment := make(circuit.Assignment, len(c.Inputs))
	for i, n := range c.Inputs {
		v, err := logic.Parse(vector[i])
		if err != nil {
			return nil, errors.Wrapf(atpgerr.ErrInvalidVector, "position %d: %v", i, err)
		}
		if v == logic.X && !allowX {
			return nil, errors.Wrapf(atpgerr.ErrInvalidVector, "position %d (%s): X not permitted here", i, n.Label)
		}
		assignment[n.ID] = v
	}
	return assignment, nil
}

// VectorString renders an assignment as a 0/1/X string in declared
// primary-input order, padding any input absent from the assignment
// with X (used for PODEM's X-padded result vector, spec §6).
func VectorString(c *circuit.Circuit, assignment circuit.Assignment) string {
	var sb strings.Builder
	for _, n := range c.Inputs {
		v, ok := assignment[n.ID]
		if !ok {
			v = logic.X
		}
		sb.WriteByte(logic.Char(v))
	}
	return sb.String()
}
