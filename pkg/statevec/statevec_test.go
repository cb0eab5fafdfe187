package statevec

import (
	"testing"

	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
	"github.com/stretchr/testify/require"
)

func TestRandomLength(t *testing.T) {
	v := Random(48)
	require.Equal(t, 48, v.Len())
}

func TestPartitionExtractsColorComponents(t *testing.T) {
	s := bitvec.FromBits([]int{1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 0})
	red := []uint32{0, 3, 6, 9}
	blue := []uint32{1, 4, 7, 10}
	green := []uint32{2, 5, 8, 11}

	require.Equal(t, "1101", Partition(s, red).String())
	require.Equal(t, "0001", Partition(s, blue).String())
	require.Equal(t, "0000", Partition(s, green).String())
}
