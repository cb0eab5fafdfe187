package swapsym

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func companionSet(pattern uint16) map[uint16]struct{} {
	tr := &Tracker{pattern: pattern}
	seen := make(map[uint16]struct{}, 4)
	for _, c := range tr.Companions() {
		seen[c] = struct{}{}
	}
	return seen
}

func TestSymmetryOrbits(t *testing.T) {
	groups := [][]uint16{
		{0b1, 0b1000, 0b100000, 0b1000000},
		{0b0111, 0b1110, 0b10110000, 0b11010000},
		{0b10010110},
	}
	for _, group := range groups {
		want := make(map[uint16]struct{}, len(group))
		for _, v := range group {
			want[v] = struct{}{}
		}
		for _, v := range group {
			got := companionSet(v)
			require.Equal(t, want, got, "orbit of %016b", v)
		}
	}
}

func TestFlipUpdatesPattern(t *testing.T) {
	tr := New()
	require.Equal(t, uint16(0), tr.Pattern())
	tr.Flip(0)
	require.Equal(t, uint16(1), tr.Pattern())
	tr.Flip(2)
	require.Equal(t, uint16(0b101), tr.Pattern())
	tr.Flip(0)
	require.Equal(t, uint16(0b100), tr.Pattern())
}

func TestIsCanonicalPicksSmallestInOrbit(t *testing.T) {
	group := []uint16{0b1, 0b1000, 0b100000, 0b1000000}
	smallest := group[0]
	for _, v := range group {
		tr := &Tracker{pattern: v}
		require.Equal(t, v == smallest, tr.IsCanonical(), "pattern %016b", v)
	}
}

func TestOrbitSizeCountsDistinctCompanions(t *testing.T) {
	tr := &Tracker{pattern: 0b10010110}
	require.Equal(t, 1, tr.OrbitSize())

	tr2 := &Tracker{pattern: 0b1}
	require.Equal(t, 4, tr2.OrbitSize())
}
