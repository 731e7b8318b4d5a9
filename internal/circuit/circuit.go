// Package circuit holds the combinational-circuit representation shared by
// the fault-free evaluator, the deductive fault simulator, and PODEM: an
// arena of gates and nets keyed by dense integer IDs, connected by slices
// rather than pointer cycles, in a topological order fixed at construction.
package circuit

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/atpgerr"
)

// Circuit is an immutable (after Build) combinational netlist.
type Circuit struct {
	Name string

	nets  map[int]*Net
	label map[string]int

	// Gates is the full gate list in topological order (inputs before
	// outputs), ties broken by declaration order.
	Gates []*Gate

	// Inputs preserves the declared primary-input order (vector position
	// matters); Outputs preserves declaration order too.
	Inputs  []*Net
	Outputs []*Net
}

// Builder accumulates gates and nets before Build performs topological
// sorting and structural validation. Construction errors are fatal per
// spec: duplicate driver, cyclic connectivity, undefined net reference,
// arity mismatch.
type Builder struct {
	name      string
	nets      map[int]*Net
	label     map[string]int
	nextNetID int
	gates     []*gateSpec
	inputs    []string // declared order
	outputs   []string
}

type gateSpec struct {
	kind    Kind
	inputs  []string
	output  string
	declIdx int
}

// NewBuilder starts a new circuit builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		nets:  make(map[int]*Net),
		label: make(map[string]int),
	}
}

// netFor returns (creating if necessary) the Net for a label.
func (b *Builder) netFor(label string) *Net {
	if id, ok := b.label[label]; ok {
		return b.nets[id]
	}
	id := b.nextNetID
	b.nextNetID++
	n := &Net{ID: id, Label: label, Role: Internal}
	b.nets[id] = n
	b.label[label] = id
	return n
}

// AddGate declares a gate. Inputs/output are net labels as they appear in
// the netlist text; the builder creates nets on first reference, so gates
// may be declared in any order relative to their producers and consumers.
func (b *Builder) AddGate(kind Kind, inputs []string, output string) error {
	if len(inputs) != kind.Arity() {
		return errors.Wrapf(atpgerr.ErrCircuitStructure,
			"gate %s expects %d input(s), got %d", kind, kind.Arity(), len(inputs))
	}
	b.netFor(output)
	for _, in := range inputs {
		b.netFor(in)
	}
	b.gates = append(b.gates, &gateSpec{kind: kind, inputs: inputs, output: output, declIdx: len(b.gates)})
	return nil
}

// SetInputs declares the ordered primary-input labels (multiple calls
// concatenate, matching the netlist format's multi-line INPUT lists).
func (b *Builder) SetInputs(labels []string) {
	b.inputs = append(b.inputs, labels...)
}

// SetOutputs declares the primary-output labels.
func (b *Builder) SetOutputs(labels []string) {
	b.outputs = append(b.outputs, labels...)
}

// Build validates structure, topologically sorts the gates, and returns an
// immutable Circuit.
func (b *Builder) Build() (*Circuit, error) {
	for _, label := range b.inputs {
		n := b.netFor(label)
		n.Role = PrimaryInput
	}
	for _, label := range b.outputs {
		n := b.netFor(label)
		if n.Role != PrimaryInput {
			n.Role = PrimaryOutput
		}
	}

	// Every gate input/output label was registered with netFor at AddGate
	// time, so lookups here cannot fail on a missing label; duplicate
	// drivers are the only thing left to catch in this pass.
	driverOf := make(map[int]*gateSpec)
	gates := make([]*Gate, len(b.gates))
	for i, gs := range b.gates {
		outNet := b.nets[b.label[gs.output]]
		if prior, dup := driverOf[outNet.ID]; dup {
			return nil, errors.Wrapf(atpgerr.ErrCircuitStructure,
				"net %q has two drivers (gates %d and %d)", gs.output, prior.declIdx, gs.declIdx)
		}
		driverOf[outNet.ID] = gs

		g := &Gate{ID: i, Kind: gs.kind}
		for _, inLabel := range gs.inputs {
			inNet := b.nets[b.label[inLabel]]
			g.Inputs = append(g.Inputs, inNet)
			inNet.Consumers = append(inNet.Consumers, g)
		}
		g.Output = outNet
		outNet.Driver = g
		gates[i] = g
	}

	// A net that is neither a primary input nor driven by any gate was
	// referenced (as a gate input, or declared as a primary output) but
	// never actually produced anywhere: an undeclared net reference.
	for _, n := range b.nets {
		if n.Role != PrimaryInput && n.Driver == nil {
			return nil, errors.Wrapf(atpgerr.ErrCircuitStructure, "undeclared net reference: %q is never driven by any gate", n.Label)
		}
	}

	ordered, err := topoSort(gates)
	if err != nil {
		return nil, err
	}

	c := &Circuit{
		Name:  b.name,
		nets:  b.nets,
		label: b.label,
		Gates: ordered,
	}
	for _, label := range b.inputs {
		c.Inputs = append(c.Inputs, b.nets[b.label[label]])
	}
	for _, label := range b.outputs {
		c.Outputs = append(c.Outputs, b.nets[b.label[label]])
	}
	if err := c.checkReachability(); err != nil {
		return nil, err
	}
	return c, nil
}

// topoSort orders gates so that every gate's inputs are produced (by a
// prior gate, or are primary inputs) before the gate itself runs. Kahn's
// algorithm; ties are broken by declaration order (gates' original index)
// to keep behavior deterministic. A non-empty remainder after the queue
// drains indicates a cycle.
func topoSort(gates []*Gate) ([]*Gate, error) {
	indegree := make(map[int]int, len(gates)) // gate ID -> # of inputs not yet "ready"
	driverGate := make(map[int]*Gate)         // net ID -> driving gate, if any
	for _, g := range gates {
		driverGate[g.Output.ID] = g
	}
	consumersOf := make(map[int][]*Gate) // net ID -> gates waiting on it

	for _, g := range gates {
		count := 0
		for _, in := range g.Inputs {
			if _, driven := driverGate[in.ID]; driven {
				count++
				consumersOf[in.ID] = append(consumersOf[in.ID], g)
			}
		}
		indegree[g.ID] = count
	}

	var ready []*Gate
	for _, g := range gates {
		if indegree[g.ID] == 0 {
			ready = append(ready, g)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i].ID < ready[j].ID })

	var order []*Gate
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i].ID < ready[j].ID })
		g := ready[0]
		ready = ready[1:]
		order = append(order, g)

		for _, waiting := range consumersOf[g.Output.ID] {
			indegree[waiting.ID]--
			if indegree[waiting.ID] == 0 {
				ready = append(ready, waiting)
			}
		}
	}

	if len(order) != len(gates) {
		return nil, errors.Wrap(atpgerr.ErrCircuitStructure, "cyclic connectivity detected")
	}
	return order, nil
}

// checkReachability enforces that every net is reachable from some primary
// input and every primary output is reachable from the net graph (spec
// §3's Circuit invariant).
func (c *Circuit) checkReachability() error {
	reachable := make(map[int]bool)
	for _, n := range c.Inputs {
		reachable[n.ID] = true
	}
	for _, g := range c.Gates {
		ok := true
		for _, in := range g.Inputs {
			if !reachable[in.ID] {
				ok = false
				break
			}
		}
		if ok {
			reachable[g.Output.ID] = true
		}
	}
	for _, n := range c.nets {
		if !reachable[n.ID] {
			return errors.Wrapf(atpgerr.ErrCircuitStructure, "net %q is not reachable from any primary input", n.Label)
		}
	}
	return nil
}

// Net returns the net with the given ID, or nil.
func (c *Circuit) Net(id int) *Net { return c.nets[id] }

// NetByLabel looks up a net by its textual label.
func (c *Circuit) NetByLabel(label string) (*Net, bool) {
	id, ok := c.label[label]
	if !ok {
		return nil, false
	}
	return c.nets[id], true
}

// Nets returns every net in the circuit (unordered).
func (c *Circuit) Nets() []*Net {
	out := make([]*Net, 0, len(c.nets))
	for _, n := range c.nets {
		out = append(out, n)
	}
	return out
}

// String implements fmt.Stringer for debug logging.
func (c *Circuit) String() string {
	return fmt.Sprintf("Circuit(%s: %d gates, %d nets, %d inputs, %d outputs)",
		c.Name, len(c.Gates), len(c.nets), len(c.Inputs), len(c.Outputs))
}
