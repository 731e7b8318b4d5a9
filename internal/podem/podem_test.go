package podem_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitlab/atpg/internal/netlist"
	"github.com/circuitlab/atpg/internal/podem"
)

const orAndNetlist = `
INPUT a b c -1
OUTPUT f -1
AND a b w1
OR w1 c f
`

// f = a AND (NOT a): structurally always 0, so f-sa-0 can never be
// distinguished from the fault-free circuit by any input.
const alwaysZeroNetlist = `
INPUT a -1
OUTPUT f -1
INV a w1
AND a w1 f
`

func TestGenerateDetectsInternalFault(t *testing.T) {
	c, err := netlist.Parse("orand", strings.NewReader(orAndNetlist))
	require.NoError(t, err)

	fault, err := netlist.ParseFault(c, "w1-sa-0")
	require.NoError(t, err)

	result := podem.NewGenerator(c, fault, nil).Generate()
	require.False(t, result.Undetectable)
	require.Equal(t, "110", result.Vector)
}

func TestGenerateDetectsOutputFaultWithDontCare(t *testing.T) {
	c, err := netlist.Parse("orand", strings.NewReader(orAndNetlist))
	require.NoError(t, err)

	fault, err := netlist.ParseFault(c, "f-sa-0")
	require.NoError(t, err)

	result := podem.NewGenerator(c, fault, nil).Generate()
	require.False(t, result.Undetectable)
	require.Equal(t, "11X", result.Vector)
}

func TestGenerateUndetectableFault(t *testing.T) {
	c, err := netlist.Parse("alwayszero", strings.NewReader(alwaysZeroNetlist))
	require.NoError(t, err)

	fault, err := netlist.ParseFault(c, "f-sa-0")
	require.NoError(t, err)

	result := podem.NewGenerator(c, fault, nil).Generate()
	require.True(t, result.Undetectable)
	require.Empty(t, result.Vector)
}
