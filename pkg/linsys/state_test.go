package linsys

import (
	"testing"

	"github.com/sbravyi-sim/iqpamp/pkg/phasepoly"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsGammaFromBG(t *testing.T) {
	g := &phasepoly.Graph{
		RBG: map[uint32][][2]uint32{},
		RB:  map[uint32][]uint32{},
		RG:  map[uint32][]uint32{},
		BG:  [][2]uint32{{0, 1}, {2, 3}},
	}
	s := New(4, g)
	require.True(t, s.Gamma.Get(0, 1))
	require.True(t, s.Gamma.Get(2, 3))
	require.False(t, s.Gamma.Get(1, 0))
	require.True(t, s.DeltaB.IsZero())
	require.True(t, s.DeltaG.IsZero())
	require.True(t, s.XRed.IsZero())
}

func TestApplyFlipTogglesTables(t *testing.T) {
	g := &phasepoly.Graph{
		RBG: map[uint32][][2]uint32{0: {{1, 2}}},
		RB:  map[uint32][]uint32{0: {3}},
		RG:  map[uint32][]uint32{0: {1}},
		BG:  nil,
	}
	s := New(4, g)
	s.ApplyFlip(0, g)
	require.True(t, s.XRed.Get(0))
	require.True(t, s.Gamma.Get(1, 2))
	require.True(t, s.DeltaB.Get(3))
	require.True(t, s.DeltaG.Get(1))

	// applying twice reverts to the original state (round-trip property).
	s.ApplyFlip(0, g)
	require.False(t, s.XRed.Get(0))
	require.False(t, s.Gamma.Get(1, 2))
	require.False(t, s.DeltaB.Get(3))
	require.False(t, s.DeltaG.Get(1))
}

func TestApplyFlipMissingTableEntriesAreNoop(t *testing.T) {
	g := &phasepoly.Graph{
		RBG: map[uint32][][2]uint32{},
		RB:  map[uint32][]uint32{},
		RG:  map[uint32][]uint32{},
		BG:  nil,
	}
	s := New(2, g)
	require.NotPanics(t, func() { s.ApplyFlip(1, g) })
	require.True(t, s.XRed.Get(1))
}
