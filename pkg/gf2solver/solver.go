// Package gf2solver implements the column-space elimination nullspace
// solver (C3): given a coefficient matrix Γ and a right-hand side b over
// 𝔽₂, it decides whether Γ·x = b is consistent, produces a particular
// solution, reports the rank of Γ, and answers nullspace-membership queries
// against the span of Γ's remaining independent rows.
//
// This is the "Sergey" column-space variant; spec.md §9 designates it
// canonical over the Gauss-Jordan/backward-substitution drafts.
package gf2solver

import (
	"github.com/sbravyi-sim/iqpamp/pkg/bitvec"
	"github.com/sbravyi-sim/iqpamp/pkg/colmat"
)

// Solver owns all workspace needed to solve an n×n system over 𝔽₂. A
// Solver is reused across every Gray-code step of one evaluation; Solve
// resets the workspace internally and performs no heap allocation once
// warmed up.
type Solver struct {
	n         int
	augmented *bitvec.Matrix // n x (n+1): [Γ | b]
	x         *colmat.ColumnMatrix
	syndrome  *bitvec.Vector
	solution  *bitvec.Vector
	rank      int
}

// New returns a solver sized for n×n systems.
func New(n int) *Solver {
	return &Solver{
		n:         n,
		augmented: bitvec.NewMatrix(n, n+1),
		x:         colmat.NewColumnMatrix(n+1, n+1),
		syndrome:  bitvec.NewVector(n + 1),
		solution:  bitvec.NewVector(n),
	}
}

// Rank returns the 𝔽₂-rank of Γ as determined by the most recent Solve call.
func (s *Solver) Rank() int { return s.rank }

// Solution returns the particular solution found by the most recent
// successful Solve call. The returned vector is owned by the solver and is
// overwritten by the next call.
func (s *Solver) Solution() *bitvec.Vector { return s.solution }

// Solve decides whether u·x = b over 𝔽₂ and, if so, computes a particular
// solution, the rank of u, and leaves the solver ready to answer
// IsNullspaceCodeword queries against u's nullspace. Returns false iff the
// system is inconsistent. Panics if u is not n×n or b does not have length n.
func (s *Solver) Solve(u *bitvec.Matrix, b *bitvec.Vector) bool {
	n := s.n
	if u.Rows() != n || u.Cols() != n || b.Len() != n {
		panic("gf2solver: Solve called with a system whose shape does not match the solver")
	}
	bHasOne := !b.IsZero()

	for i := 0; i < n; i++ {
		row := s.augmented.Row(i)
		row.Clear()
		for c := 0; c < n; c++ {
			row.Set(c, u.Get(i, c))
		}
		row.Set(n, b.Get(i))
	}

	s.layIdentity(bHasOne)
	s.rank = 0

	for i := 0; i < n; i++ {
		s.eliminateEquation(i)
	}

	return s.takeArbitrarySolution(bHasOne)
}

// layIdentity resets the column pool to the n (or n+1, if b has a one bit)
// standard basis columns, per spec.md §4.4: "initialised to the identity on
// the first n columns plus (if b ≠ 0) a final column holding b (otherwise
// the (n+1)-th column is detached upfront)."
func (s *Solver) layIdentity(bHasOne bool) {
	s.x.Reset()
	total := s.x.NumActive()
	for idx := 0; idx < total; idx++ {
		s.x.Active(idx).Clear()
	}

	limit := s.n
	if bHasOne {
		limit = s.n + 1
	}
	for idx := 0; idx < limit; idx++ {
		s.x.Active(idx).Set(idx, true)
	}
	if !bHasOne {
		s.x.RemoveActive(s.n)
	}
}

// eliminateEquation applies equation i of the augmented system to the
// column pool: columns whose inner product with row i is 1 ("bad" columns)
// are collapsed onto a single pivot, which is then discarded from the
// active pool. Ported from sergey_solver.rs's
// reformulate_x_from_augmented_syndrome.
func (s *Solver) eliminateEquation(i int) {
	row := s.augmented.Row(i)
	total := s.x.NumActive()

	s.syndrome.Clear()
	for idx := 0; idx < total; idx++ {
		if row.AndParity(s.x.Active(idx)) {
			s.syndrome.Set(idx, true)
		}
	}

	firstBad, ok := s.syndrome.FirstSet()
	if !ok {
		return
	}

	s.x.RemoveActive(firstBad)
	pivot := s.x.PopRemoved()
	s.rank++

	removed := 1
	for idx, ok := s.syndrome.NextSet(firstBad + 1); ok; idx, ok = s.syndrome.NextSet(idx + 1) {
		actual := idx - removed
		s.x.RemoveActive(actual)
		col := s.x.PopRemoved()
		col.Xor(pivot)
		s.x.PushActive(col)
		removed++
	}
	s.x.PutRemoved(pivot)
}

// takeArbitrarySolution extracts a particular solution from the surviving
// active columns, per spec.md §4.4. When b is zero the solution is x = 0.
// Otherwise the solution-bearing column is removed from the active pool, so
// the remaining active columns span the nullspace of u.
func (s *Solver) takeArbitrarySolution(bHasOne bool) bool {
	n := s.n
	if !bHasOne {
		s.solution.Clear()
		return true
	}

	solIdx := -1
	for idx := 0; idx < s.x.NumActive(); idx++ {
		if s.x.Active(idx).Get(n) {
			solIdx = idx
			break
		}
	}
	if solIdx < 0 {
		return false
	}

	solCol := s.x.Active(solIdx)
	for i := 0; i < n; i++ {
		s.solution.Set(i, solCol.Get(i))
	}
	for idx := 0; idx < s.x.NumActive(); idx++ {
		if idx == solIdx {
			continue
		}
		col := s.x.Active(idx)
		if col.Get(n) {
			col.Xor(solCol)
		}
	}
	s.x.RemoveActive(solIdx)
	return true
}

// IsNullspaceCodeword reports whether v lies in the nullspace of u^T, i.e.
// whether v is orthogonal to every column surviving from the most recent
// Solve call. v must have length n.
func (s *Solver) IsNullspaceCodeword(v *bitvec.Vector) bool {
	for idx := 0; idx < s.x.NumActive(); idx++ {
		if v.AndParity(s.x.Active(idx)) {
			return false
		}
	}
	return true
}
