package circuit

import (
	"fmt"

	"github.com/circuitlab/atpg/internal/logic"
)

// Kind enumerates the gate types the core understands: two-input
// AND/NAND/OR/NOR and one-input BUF/INV. No other gate types are
// supported (spec Non-goal).
type Kind int

const (
	AND Kind = iota
	NAND
	OR
	NOR
	BUF
	INV
)

// String renders a gate kind the way netlists spell it.
func (k Kind) String() string {
	switch k {
	case AND:
		return "AND"
	case NAND:
		return "NAND"
	case OR:
		return "OR"
	case NOR:
		return "NOR"
	case BUF:
		return "BUF"
	case INV:
		return "INV"
	default:
		return "UNKNOWN"
	}
}

// Arity returns the number of inputs a gate of this kind takes.
func (k Kind) Arity() int {
	switch k {
	case BUF, INV:
		return 1
	default:
		return 2
	}
}

// Controlling returns the gate's controlling value and whether the kind has
// one at all (BUF/INV do not).
func (k Kind) Controlling() (logic.Value, bool) {
	switch k {
	case AND, NAND:
		return logic.Zero, true
	case OR, NOR:
		return logic.One, true
	default:
		return logic.X, false
	}
}

// NonControlling returns the complement of Controlling.
func (k Kind) NonControlling() (logic.Value, bool) {
	c, ok := k.Controlling()
	if !ok {
		return logic.X, false
	}
	return logic.Not(c), true
}

// Inverts reports whether the gate's output is the inverse of its
// "natural" AND/OR/identity function (NAND, NOR, INV all invert).
func (k Kind) Inverts() bool {
	switch k {
	case NAND, NOR, INV:
		return true
	default:
		return false
	}
}

// Eval computes a gate's output value from its input values per the
// five-valued algebra of package logic.
func (k Kind) Eval(inputs []logic.Value) logic.Value {
	switch k {
	case AND:
		return logic.AndN(inputs...)
	case NAND:
		return logic.Not(logic.AndN(inputs...))
	case OR:
		return logic.OrN(inputs...)
	case NOR:
		return logic.Not(logic.OrN(inputs...))
	case BUF:
		return inputs[0]
	case INV:
		return logic.Not(inputs[0])
	default:
		return logic.X
	}
}

// ParseKind converts a netlist keyword into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "AND":
		return AND, nil
	case "NAND":
		return NAND, nil
	case "OR":
		return OR, nil
	case "NOR":
		return NOR, nil
	case "BUF":
		return BUF, nil
	case "INV", "NOT":
		return INV, nil
	default:
		return 0, fmt.Errorf("circuit: unknown gate kind %q", s)
	}
}

// Gate is one logic gate in the circuit: a kind, ordered input nets, and a
// single output net.
type Gate struct {
	ID     int
	Kind   Kind
	Inputs []*Net
	Output *Net
}

// HasFaultyInput reports whether any input of g currently holds D or D'.
func (g *Gate) HasFaultyInput(values map[int]logic.Value) bool {
	for _, in := range g.Inputs {
		if values[in.ID].IsFaulty() {
			return true
		}
	}
	return false
}
