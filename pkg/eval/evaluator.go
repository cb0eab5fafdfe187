// Package eval implements the evaluator driver (C6): it loops the
// Gray-code flip iterator, patches the linear-system state incrementally,
// calls the GF(2) solver, and accumulates the resulting amplitude.
package eval

import (
	"fmt"
	"math"

	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
	"github.com/sbravyi-sim/iqpamp/pkg/circuit"
	"github.com/sbravyi-sim/iqpamp/pkg/gf2solver"
	"github.com/sbravyi-sim/iqpamp/pkg/graycode"
	"github.com/sbravyi-sim/iqpamp/pkg/linsys"
	"github.com/sbravyi-sim/iqpamp/pkg/phasepoly"
	"github.com/sbravyi-sim/iqpamp/pkg/statevec"
	"github.com/sbravyi-sim/iqpamp/pkg/swapsym"
)

// Evaluator computes ⟨s|U|0…0⟩ for the boolean-hypercube IQP circuit built
// from Params. FilterSymmetry gates the optional swap-symmetry filter
// (§4.6); it is an optimisation only — Run must return the same amplitude
// with it on or off.
type Evaluator struct {
	Params         circuit.Params
	Graph          *phasepoly.Graph
	Coloring       circuit.Coloring
	FilterSymmetry bool
}

// New builds the circuit for params once and returns an Evaluator ready to
// answer Run calls against it.
func New(params circuit.Params, filterSymmetry bool) (*Evaluator, error) {
	if filterSymmetry && params.Nodes > swapsym.MaxNodes {
		return nil, fmt.Errorf("swap-symmetry filter is only valid for n <= %d red qubits, got n = %d", swapsym.MaxNodes, params.Nodes)
	}

	graph, coloring, err := circuit.Build(params)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		Params:         params,
		Graph:          graph,
		Coloring:       coloring,
		FilterSymmetry: filterSymmetry,
	}, nil
}

// Run computes ⟨s|U|0…0⟩ for the computational-basis bitstring s, which
// must have length 3*Params.Nodes. All scratch is allocated at Run entry
// and reused across the loop; the loop body itself performs no allocation.
func (e *Evaluator) Run(s *bitvec.Vector) float64 {
	n := int(e.Params.Nodes)

	state := linsys.New(n, e.Graph)
	solver := gf2solver.New(n)
	tracker := swapsym.New()

	sR := statevec.Partition(s, e.Coloring.Red)
	sB := statevec.Partition(s, e.Coloring.Blue)
	sG := statevec.Partition(s, e.Coloring.Green)

	sbDeltaB := bitvec.NewVector(n)
	sgDeltaG := bitvec.NewVector(n)

	var amplitude float64

	it := graycode.NewFlipIterator(uint(n))
	for {
		f, ok := it.Next()
		if !ok {
			break
		}

		if !e.FilterSymmetry || tracker.IsCanonical() {
			sbDeltaB.CopyFrom(sB)
			sbDeltaB.Xor(state.DeltaB)
			sgDeltaG.CopyFrom(sG)
			sgDeltaG.Xor(state.DeltaG)

			if !state.XRed.AndParity(sbDeltaB) && !state.XRed.AndParity(sgDeltaG) {
				if solver.Solve(state.Gamma, sbDeltaB) {
					rank := solver.Rank()
					fullRank := rank == n
					if fullRank || solver.IsNullspaceCodeword(sgDeltaG) {
						xG := solver.Solution()
						phaseParity := xG.AndParity(sgDeltaG) != state.XRed.AndParity(sR)
						contribution := math.Pow(2, -float64(rank))
						if phaseParity {
							contribution = -contribution
						}
						if e.FilterSymmetry {
							contribution *= float64(tracker.OrbitSize())
						}
						amplitude += contribution
					}
				}
			}
		}

		state.ApplyFlip(f, e.Graph)
		if e.FilterSymmetry {
			tracker.Flip(f)
		}
	}

	return amplitude / math.Pow(2, float64(n))
}
