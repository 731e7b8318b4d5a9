package netlist

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/atpgerr"
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// ParseFault parses a fault reference in any of spec §6's accepted forms:
// "<label>-sa-<v>", "<label>/<v>", or "<label> <v>" (space-separated).
func ParseFault(c *circuit.Circuit, s string) (circuit.Fault, error) {
	s = strings.TrimSpace(s)

	var label, valueStr string
	switch {
	case strings.Contains(s, "-sa-"):
		parts := strings.SplitN(s, "-sa-", 2)
		label, valueStr = parts[0], parts[1]
	case strings.Contains(s, "/"):
		parts := strings.SplitN(s, "/", 2)
		label, valueStr = parts[0], parts[1]
	default:
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return circuit.Fault{}, errors.Wrapf(atpgerr.ErrNetlistParse, "malformed fault string %q", s)
		}
		label, valueStr = fields[0], fields[1]
	}

	valueStr = strings.TrimSpace(strings.Trim(valueStr, "'\""))
	var stuckAt logic.Value
	switch valueStr {
	case "0":
		stuckAt = logic.Zero
	case "1":
		stuckAt = logic.One
	default:
		return circuit.Fault{}, errors.Wrapf(atpgerr.ErrNetlistParse, "fault stuck-value must be 0 or 1, got %q", valueStr)
	}

	n, ok := c.NetByLabel(label)
	if !ok {
		return circuit.Fault{}, errors.Wrapf(atpgerr.ErrUnknownFaultSite, "net %q", label)
	}

	return circuit.Fault{NetID: n.ID, Label: n.Label, StuckAt: stuckAt}, nil
}
