package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitlab/atpg/internal/atpgerr"
	"github.com/circuitlab/atpg/internal/circuit"
)

func TestBuildRejectsArityMismatch(t *testing.T) {
	b := circuit.NewBuilder("bad")
	b.SetInputs([]string{"a"})
	b.SetOutputs([]string{"y"})

	err := b.AddGate(circuit.AND, []string{"a"}, "y")
	require.Error(t, err)
	require.True(t, atpgerr.Is(err, atpgerr.ErrCircuitStructure))
}

func TestBuildRejectsDuplicateDriver(t *testing.T) {
	b := circuit.NewBuilder("bad")
	b.SetInputs([]string{"a", "b", "c"})
	b.SetOutputs([]string{"y"})

	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "b"}, "y"))
	require.NoError(t, b.AddGate(circuit.OR, []string{"b", "c"}, "y"))

	_, err := b.Build()
	require.Error(t, err)
	require.True(t, atpgerr.Is(err, atpgerr.ErrCircuitStructure))
}

func TestBuildRejectsUndeclaredNetReference(t *testing.T) {
	b := circuit.NewBuilder("bad")
	b.SetInputs([]string{"a", "b"})
	b.SetOutputs([]string{"y"})

	// "ghost" is never a primary input and never any gate's output: it is
	// referenced but never declared.
	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "ghost"}, "y"))

	_, err := b.Build()
	require.Error(t, err)
	require.True(t, atpgerr.Is(err, atpgerr.ErrCircuitStructure))
}

func TestBuildRejectsCyclicConnectivity(t *testing.T) {
	b := circuit.NewBuilder("bad")
	b.SetInputs([]string{"a"})
	b.SetOutputs([]string{"y"})

	// x depends on y, y depends on x: neither gate ever reaches zero
	// in-degree, so Kahn's algorithm's queue drains empty.
	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "y"}, "x"))
	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "x"}, "y"))

	_, err := b.Build()
	require.Error(t, err)
	require.True(t, atpgerr.Is(err, atpgerr.ErrCircuitStructure))
}

func TestBuildAcceptsWellFormedMultiLevelCircuit(t *testing.T) {
	b := circuit.NewBuilder("good")
	b.SetInputs([]string{"a", "b", "c"})
	b.SetOutputs([]string{"y"})

	require.NoError(t, b.AddGate(circuit.AND, []string{"a", "b"}, "w1"))
	require.NoError(t, b.AddGate(circuit.OR, []string{"w1", "c"}, "y"))

	c, err := b.Build()
	require.NoError(t, err)
	require.Len(t, c.Gates, 2)

	w1, ok := c.NetByLabel("w1")
	require.True(t, ok)
	require.NotNil(t, w1.Driver)
	require.Len(t, w1.Consumers, 1)
}
