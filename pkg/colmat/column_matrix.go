// Package colmat implements the allocation-free column-pool matrix used by
// the GF(2) nullspace solver to maintain a shrinking basis without heap
// traffic.
package colmat

import "github.com/sbravyi-sim/iqpamp/pkg/bitvec"

// ColumnMatrix holds a set of "active" columns and a set of "removed"
// columns, each a length-rows bitvec.Vector. The union of active and removed
// is fixed at construction and conserved as long as every column taken by
// PopRemoved is handed back through PushActive or PutRemoved — no column is
// ever freshly allocated on a hot path.
type ColumnMatrix struct {
	active  []*bitvec.Vector
	removed []*bitvec.Vector
	rows    int
}

// NewColumnMatrix allocates a width-column matrix of the given row count,
// all columns initially active and zeroed.
func NewColumnMatrix(rows, cols int) *ColumnMatrix {
	active := make([]*bitvec.Vector, cols)
	for i := range active {
		active[i] = bitvec.NewVector(rows)
	}
	return &ColumnMatrix{
		active:  active,
		removed: make([]*bitvec.Vector, 0, cols),
		rows:    rows,
	}
}

// Rows returns the fixed row count of every column.
func (c *ColumnMatrix) Rows() int { return c.rows }

// NumActive returns the number of currently active columns.
func (c *ColumnMatrix) NumActive() int { return len(c.active) }

// NumRemoved returns the number of currently removed columns.
func (c *ColumnMatrix) NumRemoved() int { return len(c.removed) }

// Total returns the conserved total column count (active + removed).
func (c *ColumnMatrix) Total() int { return len(c.active) + len(c.removed) }

// Active returns the active column at index i, shared with the matrix's
// storage.
func (c *ColumnMatrix) Active(i int) *bitvec.Vector { return c.active[i] }

// RemoveActive moves the active column at index i into the removed pool.
func (c *ColumnMatrix) RemoveActive(i int) {
	col := c.active[i]
	c.active = append(c.active[:i], c.active[i+1:]...)
	c.removed = append(c.removed, col)
}

// PopRemoved removes and returns the most recently removed column.
func (c *ColumnMatrix) PopRemoved() *bitvec.Vector {
	n := len(c.removed) - 1
	col := c.removed[n]
	c.removed = c.removed[:n]
	return col
}

// PushActive appends col to the active pool.
func (c *ColumnMatrix) PushActive(col *bitvec.Vector) {
	c.active = append(c.active, col)
}

// PutRemoved appends col to the removed pool.
func (c *ColumnMatrix) PutRemoved(col *bitvec.Vector) {
	c.removed = append(c.removed, col)
}

// Reset drains every removed column back into the active pool, restoring
// the full column count for a fresh solve.
func (c *ColumnMatrix) Reset() {
	c.active = append(c.active, c.removed...)
	c.removed = c.removed[:0]
}
