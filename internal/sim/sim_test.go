package sim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
	"github.com/circuitlab/atpg/internal/netlist"
	"github.com/circuitlab/atpg/internal/sim"
)

// f = (a AND b) OR c, with the AND gate's output also named so its own
// stuck-at faults are addressable.
const orAndNetlist = `
INPUT a b c -1
OUTPUT f -1
AND a b w1
OR w1 c f
`

func mustParse(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := netlist.Parse("orand", strings.NewReader(orAndNetlist))
	require.NoError(t, err)
	return c
}

func TestSimulateInput(t *testing.T) {
	c := mustParse(t)

	values, err := sim.SimulateInput(c, "110")
	require.NoError(t, err)
	f, ok := c.NetByLabel("f")
	require.True(t, ok)
	require.Equal(t, logic.One, values[f.ID])

	values, err = sim.SimulateInput(c, "000")
	require.NoError(t, err)
	require.Equal(t, logic.Zero, values[f.ID])
}

func TestSimulateInputRejectsX(t *testing.T) {
	c := mustParse(t)
	_, err := sim.SimulateInput(c, "1X0")
	require.Error(t, err)
}

func TestSimulateInputRejectsWrongLength(t *testing.T) {
	c := mustParse(t)
	_, err := sim.SimulateInput(c, "11")
	require.Error(t, err)
}

// With a=b=1, c=0: w1=1 forces f=1 regardless of c, so every fault on the
// a/b/w1/f side is detected but c-sa-1 is masked.
func TestDetectFaultsMasking(t *testing.T) {
	c := mustParse(t)

	detected, err := sim.DetectFaults(c, "110")
	require.NoError(t, err)

	faultA0, err := netlist.ParseFault(c, "a-sa-0")
	require.NoError(t, err)
	faultB0, err := netlist.ParseFault(c, "b-sa-0")
	require.NoError(t, err)
	faultW10, err := netlist.ParseFault(c, "w1-sa-0")
	require.NoError(t, err)
	faultF0, err := netlist.ParseFault(c, "f-sa-0")
	require.NoError(t, err)
	faultC1, err := netlist.ParseFault(c, "c-sa-1")
	require.NoError(t, err)

	require.True(t, detected.Contains(faultA0))
	require.True(t, detected.Contains(faultB0))
	require.True(t, detected.Contains(faultW10))
	require.True(t, detected.Contains(faultF0))
	require.False(t, detected.Contains(faultC1), "c-sa-1 is masked by w1=1 on this vector")
}

// With a=1, b=0, c=0: w1=0 (b holds the AND gate's controlling 0, so C is
// non-empty there), f=0 (no OR input holds its controlling 1, so C is
// empty there), and the AND gate's controlling input set selects the
// faults that then ride the OR's union through to f.
func TestDetectFaultsPropagatesThroughOr(t *testing.T) {
	c := mustParse(t)

	detected, err := sim.DetectFaults(c, "100")
	require.NoError(t, err)

	// w1 = AND(1,0) = 0: b=0 is AND's controlling input, so
	// L(w1) = L(b) \ L(a) ∪ {w1-sa-1}, and that list rides f's OR
	// (C empty there, since neither w1 nor c holds OR's controlling 1)
	// straight through to the output.
	faultB1, _ := netlist.ParseFault(c, "b-sa-1")
	faultW11, _ := netlist.ParseFault(c, "w1-sa-1")
	require.True(t, detected.Contains(faultB1))
	require.True(t, detected.Contains(faultW11))
}

func TestDetectFaultsUnknownFault(t *testing.T) {
	c := mustParse(t)
	_, err := netlist.ParseFault(c, "nope-sa-0")
	require.Error(t, err)
}
