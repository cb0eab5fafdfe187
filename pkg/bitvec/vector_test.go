package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorSetGetFlip(t *testing.T) {
	v := NewVector(8)
	require.False(t, v.Get(3))
	v.Set(3, true)
	require.True(t, v.Get(3))
	v.Flip(3)
	require.False(t, v.Get(3))
	v.Flip(5)
	require.True(t, v.Get(5))
}

func TestVectorXor(t *testing.T) {
	a := FromBits([]int{1, 0, 1, 0})
	b := FromBits([]int{1, 1, 0, 0})
	a.Xor(b)
	require.Equal(t, "0110", a.String())
}

func TestVectorParity(t *testing.T) {
	tests := []struct {
		bits []int
		want bool
	}{
		{[]int{0, 0, 0, 0}, false},
		{[]int{1, 0, 0, 0}, true},
		{[]int{1, 1, 0, 0}, false},
		{[]int{1, 1, 1, 0}, true},
	}
	for _, tc := range tests {
		v := FromBits(tc.bits)
		require.Equal(t, tc.want, v.Parity(), "bits=%v", tc.bits)
	}
}

func TestVectorAndParity(t *testing.T) {
	a := FromBits([]int{1, 1, 0, 1})
	b := FromBits([]int{1, 0, 0, 1})
	// overlap at positions 0 and 3: even parity
	require.False(t, a.AndParity(b))

	c := FromBits([]int{1, 0, 0, 0})
	require.True(t, a.AndParity(c))
}

func TestVectorFirstSet(t *testing.T) {
	v := NewVector(4)
	_, ok := v.FirstSet()
	require.False(t, ok)

	v.Set(2, true)
	i, ok := v.FirstSet()
	require.True(t, ok)
	require.Equal(t, 2, i)
}

func TestMatrixBasic(t *testing.T) {
	m := NewMatrix(3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	m.Set(1, 2, true)
	require.True(t, m.Get(1, 2))
	m.Flip(1, 2)
	require.False(t, m.Get(1, 2))
}
