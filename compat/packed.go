// File: packed.go
// Role: frame-copy Matrix with each row packed into []uint64 words
// instead of one bool per cell. Grounded on the pack's heavy use of
// math/bits for compact routing-table rows (gaissmai/bart); here the
// same trick compacts compatibility-matrix rows instead of trie nodes.
package compat

import "math/bits"

const wordBits = 64

// Packed is a frame-copy compatibility matrix backed by bit-packed rows.
type Packed struct {
	rows, cols int
	words      int // words per row
	cur        [][]uint64
	counts     []int

	frameStack  [][][]uint64
	countsStack [][]int
}

var _ Matrix = (*Packed)(nil)

// NewPacked allocates an all-clear rows×cols Packed matrix.
func NewPacked(rows, cols int) *Packed {
	words := (cols + wordBits - 1) / wordBits
	cur := make([][]uint64, rows)
	for i := range cur {
		cur[i] = make([]uint64, words)
	}

	return &Packed{
		rows:   rows,
		cols:   cols,
		words:  words,
		cur:    cur,
		counts: make([]int, rows),
	}
}

func (p *Packed) Rows() int { return p.rows }
func (p *Packed) Cols() int { return p.cols }

func (p *Packed) Get(i, j int) bool {
	return p.cur[i][j/wordBits]&(uint64(1)<<uint(j%wordBits)) != 0
}

func (p *Packed) Set(i, j int) {
	word := j / wordBits
	mask := uint64(1) << uint(j%wordBits)
	if p.cur[i][word]&mask == 0 {
		p.cur[i][word] |= mask
		p.counts[i]++
	}
}

func (p *Packed) Unset(i, j int) {
	word := j / wordBits
	mask := uint64(1) << uint(j%wordBits)
	if p.cur[i][word]&mask != 0 {
		p.cur[i][word] &^= mask
		p.counts[i]--
	}
}

func (p *Packed) Advance() {
	savedRows := make([][]uint64, p.rows)
	for i, row := range p.cur {
		savedRows[i] = append([]uint64(nil), row...)
	}
	p.frameStack = append(p.frameStack, savedRows)
	p.countsStack = append(p.countsStack, append([]int(nil), p.counts...))
}

func (p *Packed) Revert() {
	if len(p.frameStack) == 0 {
		panic(ErrUnbalancedRevert)
	}
	top := len(p.frameStack) - 1
	p.cur = p.frameStack[top]
	p.counts = p.countsStack[top]
	p.frameStack = p.frameStack[:top]
	p.countsStack = p.countsStack[:top]
}

func (p *Packed) NumCandidates(i int) int { return p.counts[i] }

func (p *Packed) Possible(i int) bool { return p.counts[i] > 0 }

// Row walks the live bits of row i using bits.TrailingZeros64, rather
// than testing every column one at a time.
func (p *Packed) Row(i int) []int {
	out := make([]int, 0, p.counts[i])
	for w, word := range p.cur[i] {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			j := w*wordBits + b
			if j < p.cols {
				out = append(out, j)
			}
			word &= word - 1 // clear lowest set bit
		}
	}

	return out
}
