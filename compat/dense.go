// File: dense.go
// Role: frame-copy Matrix. Advance copies the live frame onto a stack;
// Revert pops it back. Simple and branch-free; O(m*n) per Advance.
package compat

// Dense is a frame-copy compatibility matrix: one []bool per row for
// the live frame, plus a stack of full-frame snapshots taken at each
// Advance.
type Dense struct {
	rows, cols int
	cur        [][]bool
	counts     []int

	frameStack  [][][]bool
	countsStack [][]int
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates an all-clear rows×cols Dense matrix.
func NewDense(rows, cols int) *Dense {
	cur := make([][]bool, rows)
	for i := range cur {
		cur[i] = make([]bool, cols)
	}

	return &Dense{
		rows:   rows,
		cols:   cols,
		cur:    cur,
		counts: make([]int, rows),
	}
}

func (d *Dense) Rows() int { return d.rows }
func (d *Dense) Cols() int { return d.cols }

func (d *Dense) Get(i, j int) bool { return d.cur[i][j] }

func (d *Dense) Set(i, j int) {
	if !d.cur[i][j] {
		d.cur[i][j] = true
		d.counts[i]++
	}
}

func (d *Dense) Unset(i, j int) {
	if d.cur[i][j] {
		d.cur[i][j] = false
		d.counts[i]--
	}
}

func (d *Dense) Advance() {
	savedRows := make([][]bool, d.rows)
	for i, row := range d.cur {
		savedRows[i] = append([]bool(nil), row...)
	}
	d.frameStack = append(d.frameStack, savedRows)
	d.countsStack = append(d.countsStack, append([]int(nil), d.counts...))
}

func (d *Dense) Revert() {
	if len(d.frameStack) == 0 {
		panic(ErrUnbalancedRevert)
	}
	top := len(d.frameStack) - 1
	d.cur = d.frameStack[top]
	d.counts = d.countsStack[top]
	d.frameStack = d.frameStack[:top]
	d.countsStack = d.countsStack[:top]
}

func (d *Dense) NumCandidates(i int) int { return d.counts[i] }

func (d *Dense) Possible(i int) bool { return d.counts[i] > 0 }

func (d *Dense) Row(i int) []int {
	out := make([]int, 0, d.counts[i])
	for j, live := range d.cur[i] {
		if live {
			out = append(out, j)
		}
	}

	return out
}
