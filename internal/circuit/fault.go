package circuit

import (
	"fmt"

	"github.com/circuitlab/atpg/internal/logic"
)

// Fault is a single-stuck-at fault: a net held permanently at 0 or 1
// regardless of its driver.
type Fault struct {
	NetID   int
	Label   string
	StuckAt logic.Value // Zero or One
}

// String renders a fault as "label-sa-v".
func (f Fault) String() string {
	return fmt.Sprintf("%s-sa-%s", f.Label, f.StuckAt)
}

// Less orders faults by (net label, stuck value) for deterministic
// textual rendering (spec §6).
func (f Fault) Less(o Fault) bool {
	if f.Label != o.Label {
		return f.Label < o.Label
	}
	return f.StuckAt == logic.Zero && o.StuckAt == logic.One
}

// ExcitingValue is the fault-free value that, observed at the fault's net,
// indicates the fault would be excited (the opposite of the stuck value).
func (f Fault) ExcitingValue() logic.Value {
	return logic.Not(f.StuckAt)
}
