package podem

import (
	"github.com/circuitlab/atpg/internal/circuit"
	"github.com/circuitlab/atpg/internal/logic"
)

// frontierCanReachOutput is spec §4.5 step d's X-path check: at least one
// D-frontier gate must have a path of still-unassigned (X) nets leading to
// some primary output, or the fault can never be observed no matter what
// gets decided next. Assignment only ever refines X to a binary value,
// never the reverse, so a "no" answer here can never become a "yes"
// deeper in the same branch — every frontier gate is permanently walled
// off from every output. Without this check PODEM still terminates
// correctly (the D-frontier-empty check and full re-evaluation eventually
// catch the same dead end), but only after wastefully assigning every
// remaining primary input first; this is the difference between a
// correctness bug and the performance bug spec.md §9 describes.
func frontierCanReachOutput(frontier []*circuit.Gate, values circuit.Assignment) bool {
	for _, gate := range frontier {
		if xPathToOutput(gate.Output, values) {
			return true
		}
	}
	return false
}

// xPathToOutput reports whether a primary output is reachable from start
// by following only consumer gates whose output is still X.
func xPathToOutput(start *circuit.Net, values circuit.Assignment) bool {
	if start.Role == circuit.PrimaryOutput {
		return true
	}
	visited := map[int]bool{start.ID: true}
	queue := []*circuit.Net{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, g := range n.Consumers {
			out := g.Output
			if visited[out.ID] || values[out.ID] != logic.X {
				continue
			}
			if out.Role == circuit.PrimaryOutput {
				return true
			}
			visited[out.ID] = true
			queue = append(queue, out)
		}
	}
	return false
}
