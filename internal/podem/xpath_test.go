package podem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// buildOrAndCircuit is the small AND/OR fixture used throughout the
// package's tests: inputs a, b, c; w1 = a AND b; y = w1 OR c (y is the
// sole primary output).
func buildOrAndCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	b := circuit.NewBuilder("orand")
	b.SetInputs([]string{"a", "b", "c"})
	b.SetOutputs([]string{"y"})
	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "b"}, "w1"))
	require.NoError(t, b.AddGate(circuit.OR, []string{"w1", "c"}, "y"))
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestXPathToOutputReachableThroughUnassignedNets(t *testing.T) {
	c := buildOrAndCircuit(t)
	w1, _ := c.NetByLabel("w1")
	y, _ := c.NetByLabel("y")

	values := circuit.Assignment{w1.ID: logic.X, y.ID: logic.X}
	require.True(t, xPathToOutput(w1, values))
}

func TestXPathToOutputBlockedByAlreadyResolvedNet(t *testing.T) {
	c := buildOrAndCircuit(t)
	w1, _ := c.NetByLabel("w1")
	y, _ := c.NetByLabel("y")

	// y has already been resolved to a binary value (by some other,
	// still-active decision): the only path from w1 to a primary output
	// is walled off, and no later choice can reopen it.
	values := circuit.Assignment{w1.ID: logic.X, y.ID: logic.Zero}
	require.False(t, xPathToOutput(w1, values))
}

func TestXPathToOutputTrueAtThePrimaryOutputItself(t *testing.T) {
	c := buildOrAndCircuit(t)
	y, _ := c.NetByLabel("y")

	values := circuit.Assignment{y.ID: logic.X}
	require.True(t, xPathToOutput(y, values))
}

func TestFrontierCanReachOutputTrueIfAnyGateReaches(t *testing.T) {
	c := buildOrAndCircuit(t)
	w1, _ := c.NetByLabel("w1")
	y, _ := c.NetByLabel("y")

	var andGate *circuit.Gate
	for _, g := range c.Gates {
		if g.Output.ID == w1.ID {
			andGate = g
		}
	}
	require.NotNil(t, andGate)

	values := circuit.Assignment{w1.ID: logic.X, y.ID: logic.X}
	require.True(t, frontierCanReachOutput([]*circuit.Gate{andGate}, values))
}

func TestFrontierCanReachOutputFalseWhenEveryPathIsBlocked(t *testing.T) {
	c := buildOrAndCircuit(t)
	w1, _ := c.NetByLabel("w1")
	y, _ := c.NetByLabel("y")

	var andGate *circuit.Gate
	for _, g := range c.Gates {
		if g.Output.ID == w1.ID {
			andGate = g
		}
	}
	require.NotNil(t, andGate)

	values := circuit.Assignment{w1.ID: logic.X, y.ID: logic.Zero}
	require.False(t, frontierCanReachOutput([]*circuit.Gate{andGate}, values))
}
