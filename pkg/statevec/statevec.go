// Package statevec generates computational-basis bitstrings and partitions
// them into colour components for the evaluator.
//
// This corrects a bug in the harvard_sim prototype's
// generate_random_statevector, which only randomized log2(n_qubits) bits of
// a bitstring nominally of that same short length — too short to serve as a
// 3n-bit computational-basis state. Random here generates one bit per
// qubit, the length the evaluator and its seed scenarios require.
package statevec

import (
	"math/rand/v2"

	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
)

// Random generates a uniformly random nQubits-bit computational-basis
// bitstring.
func Random(nQubits int) *bitvec.Vector {
	v := bitvec.NewVector(nQubits)
	for i := 0; i < nQubits; i++ {
		if rand.IntN(2) == 1 {
			v.Set(i, true)
		}
	}
	return v
}

// Partition extracts one colour component of s: the bits at indices (one of
// a Coloring's Red, Blue, or Green slices), returned as a bitstring of
// length len(indices) with s[indices[i]] at position i.
func Partition(s *bitvec.Vector, indices []uint32) *bitvec.Vector {
	out := bitvec.NewVector(len(indices))
	for i, idx := range indices {
		if s.Get(int(idx)) {
			out.Set(i, true)
		}
	}
	return out
}
