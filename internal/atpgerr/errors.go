// Package atpgerr defines the core's error taxonomy (spec §7). Construction
// errors (parse, structural) are fatal and bubble to the caller; runtime
// errors (invalid vector, unknown fault site) fail a single operation
// without corrupting the Circuit. Undetectable is a result, not an error.
package atpgerr

import "errors"

// Sentinel errors identifying each error kind. Call sites wrap these with
// github.com/pkg/errors.Wrap/Wrapf to attach context and a stack trace;
// errors.Is/errors.As against these sentinels still works because Wrap
// preserves the Unwrap chain.
var (
	// ErrNetlistParse covers malformed lines, unknown gate kinds, and
	// missing INPUT/OUTPUT terminators.
	ErrNetlistParse = errors.New("atpg: netlist parse error")

	// ErrCircuitStructure covers duplicate drivers, undefined net
	// references, cycles, and arity mismatches.
	ErrCircuitStructure = errors.New("atpg: circuit structure error")

	// ErrInvalidVector covers length mismatches, illegal characters, and
	// D/D' supplied where only 0/1/X is legal.
	ErrInvalidVector = errors.New("atpg: invalid vector")

	// ErrUnknownFaultSite means a fault names a net absent from the
	// circuit.
	ErrUnknownFaultSite = errors.New("atpg: unknown fault site")
)

// Is reports whether err (or something it wraps) is one of the sentinels
// above. Thin wrapper kept for call sites that prefer atpgerr.Is over the
// stdlib spelling.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
