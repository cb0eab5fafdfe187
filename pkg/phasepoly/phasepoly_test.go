package phasepoly

import (
	"testing"

	"github.com/sbravyi-sim/iqpamp/pkg/qubit"
	"github.com/stretchr/testify/require"
)

func TestCCZRejectsSameColor(t *testing.T) {
	p := New()
	err := p.CCZ(qubit.New(0), qubit.New(3), qubit.New(6)) // all red (index%3==0)
	require.Error(t, err)
}

func TestCZRejectsSameColor(t *testing.T) {
	p := New()
	err := p.CZ(qubit.New(0), qubit.New(3))
	require.Error(t, err)
}

func TestCZTogglesMonomial(t *testing.T) {
	p := New()
	q0, q1 := qubit.New(0), qubit.New(1) // red, blue
	require.NoError(t, p.CZ(q0, q1))
	require.Len(t, p.monomials, 1)
	require.NoError(t, p.CZ(q0, q1))
	require.Len(t, p.monomials, 0)
}

func TestCNOTRejectsDifferentColor(t *testing.T) {
	p := New()
	err := p.CNOT(qubit.New(0), qubit.New(1))
	require.Error(t, err)
}

func TestCNOTRejectsSameIndex(t *testing.T) {
	p := New()
	err := p.CNOT(qubit.New(0), qubit.New(0))
	require.Error(t, err)
}

func TestCNOTPropagatesThroughMonomial(t *testing.T) {
	p := New()
	red0, blue1, green2 := qubit.New(0), qubit.New(1), qubit.New(2)
	require.NoError(t, p.CCZ(red0, blue1, green2))
	require.Len(t, p.monomials, 1)

	red3 := qubit.New(3) // also red
	require.NoError(t, p.CNOT(red3, red0))
	// original (red0,blue1,green2) stays; (red3,blue1,green2) is added.
	require.Len(t, p.monomials, 2)
}

func TestIntoGraphClassifiesByColor(t *testing.T) {
	p := New()
	red0, blue1, green2 := qubit.New(0), qubit.New(1), qubit.New(2)
	red3, blue4, green5 := qubit.New(3), qubit.New(4), qubit.New(5)

	require.NoError(t, p.CCZ(red0, blue1, green2)) // RBG
	require.NoError(t, p.CZ(red0, blue4))          // RB
	require.NoError(t, p.CZ(red3, green2))         // RG
	require.NoError(t, p.CZ(blue1, green5))        // BG

	g, err := p.IntoGraph()
	require.NoError(t, err)

	require.Equal(t, [][2]uint32{{1, 2}}, g.RBG[0])
	require.Equal(t, []uint32{4}, g.RB[0])
	require.Equal(t, []uint32{2}, g.RG[3])
	require.Equal(t, [][2]uint32{{1, 5}}, g.BG)
}
