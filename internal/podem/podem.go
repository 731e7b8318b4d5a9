// Package podem implements the PODEM (Path-Oriented DEcision Making) test
// generator for a single combinational stuck-at fault (spec §4.5): a
// recursive backtracking search over primary-input assignments, using full
// circuit re-evaluation (internal/circuit.EvaluateFault) as its implication
// step rather than the incremental forward/backward propagation a FAN-style
// engine would use.
package podem

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
	"github.com/circuitlab/atpg/internal/netlist"
	"github.com/circuitlab/atpg/internal/obslog"
)

// Result is PODEM's outcome: either a detected test vector, or a marker
// that the fault is undetectable. Undetectable is a result, not an error
// (spec §7).
type Result struct {
	Vector       string
	Undetectable bool
}

// Generator runs PODEM for one fault against one circuit.
type Generator struct {
	Circuit *circuit.Circuit
	Fault   circuit.Fault
	Logger  *obslog.Logger

	assignment circuit.Assignment // current primary-input assignment, X where undecided
}

// NewGenerator builds a Generator. logger may be nil (logging is skipped).
func NewGenerator(c *circuit.Circuit, fault circuit.Fault, logger *obslog.Logger) *Generator {
	return &Generator{Circuit: c, Fault: fault, Logger: logger}
}

// Generate runs the search and returns either a detected test vector or an
// Undetectable result.
func (g *Generator) Generate() Result {
	g.assignment = make(circuit.Assignment, len(g.Circuit.Inputs))
	for _, n := range g.Circuit.Inputs {
		g.assignment[n.ID] = logic.X
	}

	g.logf("Algorithm", "starting PODEM for fault %s", g.Fault)
	if g.search() {
		vector := netlist.VectorString(g.Circuit, g.assignment)
		g.logf("Algorithm", "test found: %s", vector)
		return Result{Vector: vector}
	}
	g.logf("Algorithm", "fault %s is undetectable", g.Fault)
	return Result{Undetectable: true}
}

// search is the recursive PODEM core. It returns true once a primary-input
// assignment has been found that drives D or D' to some primary output.
func (g *Generator) search() bool {
	values := g.Circuit.EvaluateFault(g.assignment, g.Fault.NetID, g.Fault.StuckAt)

	if testSuccess(g.Circuit, values) {
		return true
	}

	faultVal := values[g.Fault.NetID]
	frontier := dFrontier(g.Circuit, values)

	switch {
	case faultVal.IsBinary() && faultVal != g.Fault.ExcitingValue():
		// The fault's own net is already pinned, by earlier decisions, to
		// its non-exciting value. Every PI assignment is monotone (an X
		// can only be refined to 0/1, never reversed), so no further
		// choice in this branch can ever excite the fault.
		g.logf("Decision", "fault site %s pinned to non-exciting value, dead end", g.Fault.Label)
		return false
	case faultVal.IsFaulty() && len(frontier) == 0:
		g.logf("Backtrack", "D-frontier empty after excitation, dead end")
		return false
	case faultVal.IsFaulty() && !frontierCanReachOutput(frontier, values):
		g.logf("Frontier", "no X-path from any D-frontier gate to a primary output, dead end")
		return false
	}

	line, value, ok := objective(g.Circuit, g.Fault, values, frontier)
	if !ok {
		return false
	}

	piNet, piValue := backtrace(line, value, values)
	g.logf("Decision", "objective %s=%v backtraced to %s=%v", line.Label, value, piNet.Label, piValue)

	g.indentLog()
	defer g.outdentLog()

	for _, try := range [2]logic.Value{piValue, logic.Not(piValue)} {
		g.assignment[piNet.ID] = try
		g.logf("Decision", "trying %s=%v", piNet.Label, try)
		if g.search() {
			return true
		}
		g.logf("Backtrack", "%s=%v failed", piNet.Label, try)
	}
	g.assignment[piNet.ID] = logic.X
	return false
}

func testSuccess(c *circuit.Circuit, values circuit.Assignment) bool {
	for _, po := range c.Outputs {
		if values[po.ID].IsFaulty() {
			return true
		}
	}
	return false
}

func (g *Generator) logf(category, format string, args ...interface{}) {
	if g.Logger == nil {
		return
	}
	switch category {
	case "Algorithm":
		g.Logger.Algorithm(format, args...)
	case "Decision":
		g.Logger.Decision(format, args...)
	case "Backtrack":
		g.Logger.Backtrack(format, args...)
	case "Frontier":
		g.Logger.Frontier(format, args...)
	default:
		g.Logger.Debug(format, args...)
	}
}

func (g *Generator) indentLog() {
	if g.Logger != nil {
		g.Logger.Indent()
	}
}

func (g *Generator) outdentLog() {
	if g.Logger != nil {
		g.Logger.Outdent()
	}
}
