// Package linsys holds the incrementally maintained linear-algebra state
// (Γ, δ_B, δ_G, x_R) that the evaluator patches by O(degree) per Gray-code
// step instead of rebuilding from scratch.
package linsys

import (
	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
	"github.com/sbravyi-sim/iqpamp/pkg/phasepoly"
)

// State is the per-step algebraic state shared across one evaluation.
type State struct {
	Gamma  *bitvec.Matrix
	DeltaB *bitvec.Vector
	DeltaG *bitvec.Vector
	XRed   *bitvec.Vector
}

// New constructs a State for the given monomial graph, seeded from its BG
// table: Γ has a 1 at (b,g) for every (b,g) in BG, and δ_B, δ_G, x_R start
// at zero. nodes is the graph's per-colour qubit count n.
func New(nodes int, graph *phasepoly.Graph) *State {
	gamma := bitvec.NewMatrix(nodes, nodes)
	for _, bg := range graph.BG {
		gamma.Set(int(bg[0]), int(bg[1]), true)
	}
	return &State{
		Gamma:  gamma,
		DeltaB: bitvec.NewVector(nodes),
		DeltaG: bitvec.NewVector(nodes),
		XRed:   bitvec.NewVector(nodes),
	}
}

// ApplyFlip mutates the state to the result of flipping red bit r, using
// only the graph's precomputed monomial tables for r. No allocation.
func (s *State) ApplyFlip(r int, graph *phasepoly.Graph) {
	s.XRed.Flip(r)
	for _, bg := range graph.RBG[uint32(r)] {
		s.Gamma.Flip(int(bg[0]), int(bg[1]))
	}
	for _, b := range graph.RB[uint32(r)] {
		s.DeltaB.Flip(int(b))
	}
	for _, g := range graph.RG[uint32(r)] {
		s.DeltaG.Flip(int(g))
	}
}
