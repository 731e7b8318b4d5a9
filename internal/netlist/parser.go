// Package netlist reads the line-oriented ASCII netlist format (spec §6)
// into a circuit.Circuit, and parses the fault, vector, and result string
// forms that accompany it. Producers of netlist files and reports are
// external collaborators (spec §1); this package only consumes.
package netlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitlab/atpg/internal/atpgerr"
	"github.com/circuitlab/atpg/internal/circuit"
)

// Parse reads a netlist from r and returns the built Circuit. Each line is
// one of:
//
//	KIND a b out      two-input gate (KIND in {AND,NAND,OR,NOR})
//	KIND in out       one-input gate (KIND in {BUF,INV})
//	INPUT l1 l2 ... -1
//	OUTPUT l1 l2 ... -1
//
// Comments begin with '#'; blank lines are ignored. Multiple INPUT/OUTPUT
// lines concatenate in order.
func Parse(name string, r io.Reader) (*circuit.Circuit, error) {
	b := circuit.NewBuilder(name)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if line == "" {
				continue
			}
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Wrapf(atpgerr.ErrNetlistParse, "line %d: too few fields: %q", lineNo, scanner.Text())
		}

		switch strings.ToUpper(fields[0]) {
		case "INPUT":
			labels, err := terminatedList(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			b.SetInputs(labels)
		case "OUTPUT":
			labels, err := terminatedList(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			b.SetOutputs(labels)
		default:
			kind, err := circuit.ParseKind(strings.ToUpper(fields[0]))
			if err != nil {
				return nil, errors.Wrapf(atpgerr.ErrNetlistParse, "line %d: %v", lineNo, err)
			}
			rest := fields[1:]
			if len(rest) < 2 {
				return nil, errors.Wrapf(atpgerr.ErrNetlistParse, "line %d: gate declaration needs inputs and an output", lineNo)
			}
			output := rest[len(rest)-1]
			inputs := rest[:len(rest)-1]
			if err := b.AddGate(kind, inputs, output); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "netlist: reading input")
	}

	return b.Build()
}

// terminatedList parses an INPUT/OUTPUT line's label list, which must end
// with the sentinel "-1".
func terminatedList(fields []string) ([]string, error) {
	if len(fields) == 0 || fields[len(fields)-1] != "-1" {
		return nil, errors.Wrap(atpgerr.ErrNetlistParse, "missing -1 terminator")
	}
	return fields[:len(fields)-1], nil
}
