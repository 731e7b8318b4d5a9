package circuit

import (
	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/atpgerr"
	"github.com/circuitlab/atpg/internal/logic"
)

// Assignment is a full or partial mapping from net ID to logic value.
// Evaluate always returns a complete assignment covering every net.
type Assignment map[int]logic.Value

// Evaluate maps a (partial) assignment of primary-input values to every
// net, in topological order, using the five-valued algebra. Unassigned
// primary inputs read as X. It rejects D/D' on any primary input: those
// composite values only ever arise internally, from fault injection
// (see EvaluateFault). Evaluate has no side effects and is safe to call
// repeatedly with identical results (spec §5 determinism).
func (c *Circuit) Evaluate(inputs Assignment) (Assignment, error) {
	for _, n := range c.Inputs {
		if v, ok := inputs[n.ID]; ok && v.IsFaulty() {
			return nil, errors.Wrapf(atpgerr.ErrInvalidVector, "primary input %q carries a fault value %v", n.Label, v)
		}
	}
	return c.evaluate(inputs, -1, logic.X, false), nil
}

// EvaluateFault runs the same topological pass as Evaluate but additionally
// excites a single stuck-at fault at faultNet: whenever that net's
// naturally-computed value equals the polarity needed to excite the fault,
// it is overridden with the composite D or D' value, and the five-valued
// algebra propagates the discrepancy forward automatically from there.
// faultNet == -1 disables fault injection (identical to Evaluate on binary
// inputs).
func (c *Circuit) EvaluateFault(inputs Assignment, faultNet int, stuckAt logic.Value) Assignment {
	return c.evaluate(inputs, faultNet, stuckAt, true)
}

func (c *Circuit) evaluate(inputs Assignment, faultNet int, stuckAt logic.Value, hasFault bool) Assignment {
	values := make(Assignment, len(c.nets))

	for _, n := range c.Inputs {
		v, ok := inputs[n.ID]
		if !ok {
			v = logic.X
		}
		values[n.ID] = c.applyFault(n.ID, v, faultNet, stuckAt, hasFault)
	}

	for _, g := range c.Gates {
		in := make([]logic.Value, len(g.Inputs))
		for i, inNet := range g.Inputs {
			in[i] = values[inNet.ID]
		}
		out := g.Kind.Eval(in)
		values[g.Output.ID] = c.applyFault(g.Output.ID, out, faultNet, stuckAt, hasFault)
	}

	return values
}

// applyFault overrides a just-computed natural value with the composite
// D/D' value if netID is the fault site and the natural value matches the
// polarity that excites the fault. Per spec §4.5: stuck-at-0 excites on a
// natural 1 (becomes D); stuck-at-1 excites on a natural 0 (becomes D').
func (c *Circuit) applyFault(netID int, natural logic.Value, faultNet int, stuckAt logic.Value, hasFault bool) logic.Value {
	if !hasFault || netID != faultNet {
		return natural
	}
	exciteOn := logic.Not(stuckAt)
	if natural != exciteOn {
		return natural
	}
	if stuckAt == logic.Zero {
		return logic.D
	}
	return logic.Dbar
}

// OutputString renders the primary-output projection of a full assignment
// as a 0/1/X string in declared output order. It panics if any output
// carries a D/D' value; callers that might see fault effects should read
// the map directly instead.
func (c *Circuit) OutputString(values Assignment) string {
	buf := make([]byte, len(c.Outputs))
	for i, n := range c.Outputs {
		buf[i] = logic.Char(values[n.ID])
	}
	return string(buf)
}
