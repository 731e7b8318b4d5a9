package sim

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/faultset"
	"github.com/circuitlab/atpg/internal/logic"
	"github.com/circuitlab/atpg/internal/netlist"
)

// DetectFaults runs the deductive fault simulator (spec §4.4) for a single
// binary primary-input vector and returns every single-stuck-at fault it
// detects: those whose fault list reaches some primary output.
//
// The algorithm propagates a fault list L(n) per net in topological order.
// At a primary input n, L(n) = {n stuck-at ¬v(n)}. At a gate output n with
// controlling value c and inversion i for its kind, and inputs split into
// C (inputs holding c) and the rest:
//
//	C empty:     L(n) = (union of L(j) for all inputs j) ∪ {n stuck-at ¬v(n)}
//	C non-empty: L(n) = (intersection of L(j) for j in C, minus the union of
//	             L(j) for j not in C) ∪ {n stuck-at ¬v(n)}
//
// BUF/INV (no controlling value) simply pass through: L(n) = L(input) ∪
// {n stuck-at ¬v(n)}.
func DetectFaults(c *circuit.Circuit, vector string) (faultset.Set, error) {
	assignment, err := netlist.ParseVector(c, vector, false)
	if err != nil {
		return nil, err
	}
	values, err := c.Evaluate(assignment)
	if err != nil {
		return nil, err
	}

	lists := make(map[int]faultset.Set, len(values))
	for _, n := range c.Inputs {
		lists[n.ID] = faultset.New(circuit.Fault{NetID: n.ID, Label: n.Label, StuckAt: logic.Not(values[n.ID])})
	}

	for _, g := range c.Gates {
		out := g.Output
		v := values[out.ID]
		newFault := circuit.Fault{NetID: out.ID, Label: out.Label, StuckAt: logic.Not(v)}

		var list faultset.Set
		if cval, hasControlling := g.Kind.Controlling(); hasControlling {
			var controlling, rest []*circuit.Net
			for _, in := range g.Inputs {
				if values[in.ID] == cval {
					controlling = append(controlling, in)
				} else {
					rest = append(rest, in)
				}
			}
			if len(controlling) == 0 {
				list = faultset.New()
				for _, in := range g.Inputs {
					list = list.Union(lists[in.ID])
				}
			} else {
				list = lists[controlling[0].ID]
				for _, in := range controlling[1:] {
					list = list.Intersect(lists[in.ID])
				}
				for _, in := range rest {
					list = list.Subtract(lists[in.ID])
				}
			}
		} else {
			// BUF/INV: single input, no controlling value.
			list = lists[g.Inputs[0].ID]
		}

		list = list.Union(faultset.New(newFault))
		lists[out.ID] = list
	}

	detected := faultset.New()
	for _, po := range c.Outputs {
		detected = detected.Union(lists[po.ID])
	}
	return detected, nil
}
