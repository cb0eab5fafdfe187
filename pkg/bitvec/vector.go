// Package bitvec provides packed 𝔽₂ bit vectors and row-oriented bit
// matrices used throughout the amplitude evaluator's hot loop.
package bitvec

import "github.com/bits-and-blooms/bitset"

// Vector is a fixed-length packed bit vector over 𝔽₂.
type Vector struct {
	bits *bitset.BitSet
	n    uint
}

// NewVector returns a zero-initialized vector of length n.
func NewVector(n int) *Vector {
	return &Vector{bits: bitset.New(uint(n)), n: uint(n)}
}

// Len returns the vector's fixed length.
func (v *Vector) Len() int { return int(v.n) }

// Get reads bit i.
func (v *Vector) Get(i int) bool {
	return v.bits.Test(uint(i))
}

// Set writes bit i to val.
func (v *Vector) Set(i int, val bool) {
	v.bits.SetTo(uint(i), val)
}

// Flip toggles bit i.
func (v *Vector) Flip(i int) {
	v.bits.Flip(uint(i))
}

// Clear resets every bit to zero.
func (v *Vector) Clear() {
	v.bits.ClearAll()
}

// Xor XORs other into v in place. Both vectors must share the same length.
func (v *Vector) Xor(other *Vector) {
	v.bits.InPlaceSymmetricDifference(other.bits)
}

// CopyFrom overwrites v's contents with other's. Both must share the same length.
func (v *Vector) CopyFrom(other *Vector) {
	v.bits.ClearAll()
	v.bits.InPlaceUnion(other.bits)
}

// FirstSet returns the index of the lowest set bit, or (0, false) if v is all zero.
func (v *Vector) FirstSet() (int, bool) {
	return v.NextSet(0)
}

// NextSet returns the index of the lowest set bit at or after from, or
// (0, false) if none remains.
func (v *Vector) NextSet(from int) (int, bool) {
	i, ok := v.bits.NextSet(uint(from))
	return int(i), ok
}

// IsZero reports whether every bit is zero.
func (v *Vector) IsZero() bool {
	return v.bits.None()
}

// Parity returns the population count of v modulo 2.
func (v *Vector) Parity() bool {
	return v.bits.Count()%2 != 0
}

// AndParity returns the parity of the bitwise AND of v and other — the
// inner product of v and other over 𝔽₂. Both vectors must share the same
// length. Walks only the set bits of v, via NextSet, so it performs no heap
// allocation and is safe to call from the evaluator's hot loop.
func (v *Vector) AndParity(other *Vector) bool {
	odd := false
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		if other.bits.Test(i) {
			odd = !odd
		}
	}
	return odd
}

// String renders v as a string of '0'/'1' characters, most significant
// (highest-index) bit last, matching the row-major convention used by the
// seed scenarios in spec.md §8.
func (v *Vector) String() string {
	out := make([]byte, v.n)
	for i := uint(0); i < v.n; i++ {
		if v.bits.Test(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// FromBits builds a Vector from a slice of 0/1 ints, in index order.
func FromBits(bits []int) *Vector {
	v := NewVector(len(bits))
	for i, b := range bits {
		if b != 0 {
			v.Set(i, true)
		}
	}
	return v
}
