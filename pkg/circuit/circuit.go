// Package circuit builds the boolean-hypercube IQP circuit's phase
// polynomial and qubit coloring from the cube dimension k, per §4.1 of the
// Bravyi et al. construction this spec is drawn from.
package circuit

import (
	"math/bits"

	"github.com/sbravyi-sim/iqpamp/pkg/phasepoly"
	"github.com/sbravyi-sim/iqpamp/pkg/qubit"
)

// Params describes the size of a boolean-hypercube IQP circuit: a
// k-dimensional cube of nodes, each node carrying one red, one blue, and
// one green qubit.
type Params struct {
	BooleanCubeDimension uint
	Nodes                uint
	NQubits              uint
}

// NewParams derives Nodes = 2^k and NQubits = 3*Nodes from k.
func NewParams(k uint) Params {
	nodes := uint(1) << k
	return Params{
		BooleanCubeDimension: k,
		Nodes:                nodes,
		NQubits:              3 * nodes,
	}
}

// Coloring partitions [0, 3*nodes) into three disjoint, index-ordered
// qubit-index slices, one per colour.
type Coloring struct {
	Red   []uint32
	Blue  []uint32
	Green []uint32
}

func newColoring(nQubits uint) Coloring {
	c := Coloring{}
	for i := uint32(0); i < uint32(nQubits); i++ {
		switch qubit.New(i).Color {
		case qubit.Red:
			c.Red = append(c.Red, i)
		case qubit.Blue:
			c.Blue = append(c.Blue, i)
		case qubit.Green:
			c.Green = append(c.Green, i)
		}
	}
	return c
}

// Build constructs the phase polynomial and qubit coloring for a
// boolean-hypercube IQP circuit of the given parameters: an initial layer
// of A-rectangles (CCZ + 3 CZ per cube node), then for each cube direction
// a layer of CNOTs (control = even-parity node, target = the adjacent
// odd-parity node) followed by an alternating A/B-rectangle layer.
//
// Qubits are handed to the phase polynomial with the cube node index
// (range [0, Nodes)) as their Index, not the global qubit index
// (range [0, NQubits)) that Coloring records. The resulting RBG/RB/RG/BG
// tables index Γ, δ_B, and δ_G, which are sized Nodes×Nodes — global
// indices would read and write outside that range for any circuit with
// more than one node. Coloring's global indices are for statevec.Partition,
// which reads the full NQubits-bit computational-basis state.
func Build(params Params) (*phasepoly.Graph, Coloring, error) {
	coloring := newColoring(params.NQubits)
	pp := phasepoly.New()

	applyRectangle := func(i int, includeRG bool) error {
		local := uint32(i)
		r := qubit.NewWithColor(local, qubit.Red)
		b := qubit.NewWithColor(local, qubit.Blue)
		g := qubit.NewWithColor(local, qubit.Green)
		if err := pp.CCZ(r, b, g); err != nil {
			return err
		}
		if err := pp.CZ(r, b); err != nil {
			return err
		}
		if err := pp.CZ(b, g); err != nil {
			return err
		}
		if includeRG {
			if err := pp.CZ(r, g); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < int(params.Nodes); i++ {
		if err := applyRectangle(i, true); err != nil {
			return nil, Coloring{}, err
		}
	}

	for direction := uint(0); direction < params.BooleanCubeDimension; direction++ {
		for x := 0; x < int(params.Nodes); x++ {
			if bits.OnesCount(uint(x))%2 != 0 {
				continue
			}
			y := x ^ (1 << direction)
			lx, ly := uint32(x), uint32(y)
			if err := pp.CNOT(qubit.NewWithColor(lx, qubit.Red), qubit.NewWithColor(ly, qubit.Red)); err != nil {
				return nil, Coloring{}, err
			}
			if err := pp.CNOT(qubit.NewWithColor(lx, qubit.Blue), qubit.NewWithColor(ly, qubit.Blue)); err != nil {
				return nil, Coloring{}, err
			}
			if err := pp.CNOT(qubit.NewWithColor(lx, qubit.Green), qubit.NewWithColor(ly, qubit.Green)); err != nil {
				return nil, Coloring{}, err
			}
		}

		includeRG := direction%2 != 0
		for i := 0; i < int(params.Nodes); i++ {
			if err := applyRectangle(i, includeRG); err != nil {
				return nil, Coloring{}, err
			}
		}
	}

	graph, err := pp.IntoGraph()
	if err != nil {
		return nil, Coloring{}, err
	}
	return graph, coloring, nil
}
