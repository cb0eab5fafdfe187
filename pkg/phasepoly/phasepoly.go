// Package phasepoly builds the phase-polynomial representation of a
// diagonal (CCZ/CZ) circuit, conjugated by CNOTs, and reduces it to the
// colour-indexed monomial tables consumed by the linear-system state (C4).
package phasepoly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbravyi-sim/iqpamp/pkg/qubit"
)

// Polynomial accumulates a phase polynomial over 𝔽₂ as a set of monomials,
// each a set of 2 or 3 qubits of distinct colours. Adding a monomial that is
// already present removes it (𝔽₂ addition is its own inverse).
type Polynomial struct {
	monomials map[string][]qubit.Qubit
}

// New returns an empty phase polynomial.
func New() *Polynomial {
	return &Polynomial{monomials: make(map[string][]qubit.Qubit)}
}

func sortedCopy(qs []qubit.Qubit) []qubit.Qubit {
	out := make([]qubit.Qubit, len(qs))
	copy(out, qs)
	sort.Slice(out, func(i, j int) bool { return qubit.Less(out[i], out[j]) })
	return out
}

func monomialKey(qs []qubit.Qubit) string {
	var sb strings.Builder
	for _, q := range qs {
		fmt.Fprintf(&sb, "%d:%d,", q.Color, q.Index)
	}
	return sb.String()
}

// toggle adds qs to the monomial set if absent, removes it if present.
func (p *Polynomial) toggle(qs []qubit.Qubit) {
	sorted := sortedCopy(qs)
	key := monomialKey(sorted)
	if _, ok := p.monomials[key]; ok {
		delete(p.monomials, key)
	} else {
		p.monomials[key] = sorted
	}
}

func distinctColors(qs ...qubit.Qubit) int {
	seen := make(map[qubit.Color]struct{}, len(qs))
	for _, q := range qs {
		seen[q.Color] = struct{}{}
	}
	return len(seen)
}

// CCZ applies a controlled-controlled-Z gate on three qubits of three
// distinct colours to the phase polynomial.
func (p *Polynomial) CCZ(q1, q2, q3 qubit.Qubit) error {
	if distinctColors(q1, q2, q3) != 3 {
		return fmt.Errorf("phasepoly: CCZ requires three distinct colours, got %v/%v/%v", q1.Color, q2.Color, q3.Color)
	}
	p.toggle([]qubit.Qubit{q1, q2, q3})
	return nil
}

// CZ applies a controlled-Z gate on two qubits of distinct colours to the
// phase polynomial.
func (p *Polynomial) CZ(q1, q2 qubit.Qubit) error {
	if q1.Color == q2.Color {
		return fmt.Errorf("phasepoly: CZ requires distinct colours, got %v/%v", q1.Color, q2.Color)
	}
	p.toggle([]qubit.Qubit{q1, q2})
	return nil
}

// CNOT conjugates the phase polynomial by a CNOT with control c and target
// t; c and t must share a colour and have distinct indices. Every monomial
// containing t contributes an additional (toggled) monomial with t replaced
// by c.
func (p *Polynomial) CNOT(c, t qubit.Qubit) error {
	if c.Index == t.Index {
		return fmt.Errorf("phasepoly: CNOT control and target must differ, both index %d", c.Index)
	}
	if c.Color != t.Color {
		return fmt.Errorf("phasepoly: CNOT control and target must share a colour, got %v/%v", c.Color, t.Color)
	}

	impacted := make([][]qubit.Qubit, 0, len(p.monomials))
	for _, qs := range p.monomials {
		if containsQubit(qs, t) {
			impacted = append(impacted, qs)
		}
	}

	for _, m := range impacted {
		controlled := make([]qubit.Qubit, 0, len(m))
		for _, q := range m {
			if q == t {
				continue
			}
			controlled = append(controlled, q)
		}
		controlled = append(controlled, c)
		p.toggle(controlled)
	}
	return nil
}

func containsQubit(qs []qubit.Qubit, q qubit.Qubit) bool {
	for _, candidate := range qs {
		if candidate == q {
			return true
		}
	}
	return false
}

// Graph is the colour-indexed reduction of a phase polynomial consumed by
// the linear-system state (C4): RBG/RB/RG per-red-bit update lists, and a
// static BG seed list.
type Graph struct {
	RBG map[uint32][][2]uint32
	RB  map[uint32][]uint32
	RG  map[uint32][]uint32
	BG  [][2]uint32
}

// IntoGraph reduces the accumulated monomials into the four colour-indexed
// tables. Every monomial must have 2 or 3 qubits of distinct colours, which
// CCZ/CZ/CNOT already enforce.
func (p *Polynomial) IntoGraph() (*Graph, error) {
	g := &Graph{
		RBG: make(map[uint32][][2]uint32),
		RB:  make(map[uint32][]uint32),
		RG:  make(map[uint32][]uint32),
		BG:  nil,
	}

	for _, qs := range p.monomials {
		byColor := make(map[qubit.Color]qubit.Qubit, len(qs))
		for _, q := range qs {
			byColor[q.Color] = q
		}

		_, hasRed := byColor[qubit.Red]
		_, hasBlue := byColor[qubit.Blue]
		_, hasGreen := byColor[qubit.Green]

		switch {
		case hasRed && hasBlue && hasGreen:
			red := byColor[qubit.Red]
			b := byColor[qubit.Blue].Index
			gr := byColor[qubit.Green].Index
			g.RBG[red.Index] = append(g.RBG[red.Index], [2]uint32{b, gr})
		case hasRed && hasGreen && !hasBlue:
			red := byColor[qubit.Red]
			g.RG[red.Index] = append(g.RG[red.Index], byColor[qubit.Green].Index)
		case hasRed && hasBlue && !hasGreen:
			red := byColor[qubit.Red]
			g.RB[red.Index] = append(g.RB[red.Index], byColor[qubit.Blue].Index)
		case hasBlue && hasGreen && !hasRed:
			g.BG = append(g.BG, [2]uint32{byColor[qubit.Blue].Index, byColor[qubit.Green].Index})
		default:
			return nil, fmt.Errorf("phasepoly: monomial %v has an unsupported colour combination", qs)
		}
	}

	return g, nil
}
