// Package qubit defines the three-colouring of qubit indices used to build
// the boolean-hypercube IQP circuit's phase polynomial.
package qubit

// Color is one of the three qubit colours assigned by index modulo 3.
type Color int

const (
	Red Color = iota
	Blue
	Green
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Qubit is a circuit qubit: its index and its assigned colour. New sets a
// global index; NewWithColor takes any index, such as a node-local one.
type Qubit struct {
	Index uint32
	Color Color
}

var colorOrder = [3]Color{Red, Blue, Green}

func assignColor(index uint32) Color {
	return colorOrder[index%3]
}

// New returns the qubit at the given global index, with its colour derived
// from index%3.
func New(index uint32) Qubit {
	return Qubit{Index: index, Color: assignColor(index)}
}

// NewWithColor returns a qubit with an explicit colour and a caller-supplied
// index, bypassing the index%3 colour derivation. Used to build phase
// polynomials over node-local indices (range [0, nodes)) rather than global
// qubit indices (range [0, 3*nodes)): the monomial tables this feeds index
// Γ, δ_B, and δ_G, which are sized nodes×nodes, not 3*nodes×3*nodes.
func NewWithColor(index uint32, color Color) Qubit {
	return Qubit{Index: index, Color: color}
}

// Less orders qubits by (colour, index), matching the ordering used to
// canonicalise monomials during phase-polynomial construction. Colour must
// be compared first: a phase polynomial built over node-local indices has
// qubits of different colours sharing the same Index value, so Index alone
// cannot distinguish them.
func Less(a, b Qubit) bool {
	if a.Color != b.Color {
		return a.Color < b.Color
	}
	return a.Index < b.Index
}
