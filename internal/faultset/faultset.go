// Package faultset implements the small set-algebraic fault lists the
// deductive simulator propagates through gate inputs: fast union,
// intersection, and difference over circuit.Fault values.
package faultset

import (
	"sort"

	"github.com/circuitlab/atpg/internal/circuit"
)

// Set is a hashed set of faults. The zero value is not usable; use New.
type Set map[circuit.Fault]struct{}

// New returns a fault set containing the given faults.
func New(faults ...circuit.Fault) Set {
	s := make(Set, len(faults))
	for _, f := range faults {
		s[f] = struct{}{}
	}
	return s
}

// Add inserts f into s.
func (s Set) Add(f circuit.Fault) {
	s[f] = struct{}{}
}

// Contains reports whether f is in s.
func (s Set) Contains(f circuit.Fault) bool {
	_, ok := s[f]
	return ok
}

// Union returns a new set containing every fault in s or other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for f := range s {
		out[f] = struct{}{}
	}
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

// Intersect returns a new set containing faults present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(Set, len(small))
	for f := range small {
		if _, ok := big[f]; ok {
			out[f] = struct{}{}
		}
	}
	return out
}

// Subtract returns a new set containing faults in s that are not in other.
func (s Set) Subtract(other Set) Set {
	out := make(Set, len(s))
	for f := range s {
		if _, ok := other[f]; !ok {
			out[f] = struct{}{}
		}
	}
	return out
}

// Sorted returns the set's faults ordered by (net label, stuck value), the
// canonical rendering order spec §6 requires.
func (s Set) Sorted() []circuit.Fault {
	out := make([]circuit.Fault, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
