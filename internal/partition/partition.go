package partition

import (
	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/internal/invariant"
)

// swapLog records one swap performed during a Push, so the matching Pop
// can undo it by swapping the same two positions back.
type swapLog struct {
	out  bool // true: outOrder[w]; false: inOrder[w]
	w    int
	posA int
	posB int
}

// Partition owns a mutable before/after split of every vertex's out-
// and in-neighbour lists over a fixed *graph.Graph.
type Partition struct {
	g *graph.Graph

	outOrder [][]int
	outPos   []map[int]int
	outMid   []int

	inOrder [][]int
	inPos   []map[int]int
	inMid   []int

	// pushLog[k] holds the swaps performed by the k-th Push call still
	// outstanding (not yet Popped); a LIFO stack of swap batches.
	pushLog [][]swapLog
}

// New builds a Partition over g with every vertex initially fully
// "after" (mid == 0 in every list).
func New(g *graph.Graph) *Partition {
	n := g.NumVertices()
	p := &Partition{
		g:        g,
		outOrder: make([][]int, n),
		outPos:   make([]map[int]int, n),
		outMid:   make([]int, n),
		inOrder:  make([][]int, n),
		inPos:    make([]map[int]int, n),
		inMid:    make([]int, n),
	}
	for w := 0; w < n; w++ {
		p.outOrder[w] = append([]int(nil), g.OutNeighbors(w)...)
		p.outPos[w] = indexOf(p.outOrder[w])
		p.inOrder[w] = append([]int(nil), g.InNeighbors(w)...)
		p.inPos[w] = indexOf(p.inOrder[w])
	}

	return p
}

func indexOf(s []int) map[int]int {
	m := make(map[int]int, len(s))
	for i, v := range s {
		m[v] = i
	}

	return m
}

// Push marks u visited: for every w with an edge w->u, u moves to the
// "before" side of outOrder[w]; for every w with an edge u->w, u moves
// to the "before" side of inOrder[w].
func (p *Partition) Push(u int) {
	var batch []swapLog
	for _, w := range p.g.InNeighbors(u) {
		if log, ok := p.advance(w, u, true); ok {
			batch = append(batch, log)
		}
	}
	for _, w := range p.g.OutNeighbors(u) {
		if log, ok := p.advance(w, u, false); ok {
			batch = append(batch, log)
		}
	}
	p.pushLog = append(p.pushLog, batch)
}

// advance moves u to position mid in the relevant list of w and bumps
// mid by one, returning the swap performed (or ok=false if u was
// already on the "before" side, i.e. this Partition was misused twice
// for the same edge — defensively skipped rather than corrupting state).
func (p *Partition) advance(w, u int, out bool) (swapLog, bool) {
	order, pos, mid := p.lists(w, out)
	ui, uok := pos[u]
	if !uok || ui < *mid {
		return swapLog{}, false
	}
	boundary := *mid
	p.swap(order, pos, ui, boundary)
	*mid++

	return swapLog{out: out, w: w, posA: ui, posB: boundary}, true
}

func (p *Partition) lists(w int, out bool) (order []int, pos map[int]int, mid *int) {
	if out {
		return p.outOrder[w], p.outPos[w], &p.outMid[w]
	}

	return p.inOrder[w], p.inPos[w], &p.inMid[w]
}

func (p *Partition) swap(order []int, pos map[int]int, a, b int) {
	order[a], order[b] = order[b], order[a]
	pos[order[a]] = a
	pos[order[b]] = b
}

// Pop undoes the most recent still-outstanding Push, in reverse order
// of the swaps it performed.
func (p *Partition) Pop() {
	invariant.Check(len(p.pushLog) > 0, "partition: Pop called without a matching Push")
	top := len(p.pushLog) - 1
	batch := p.pushLog[top]
	p.pushLog = p.pushLog[:top]

	for k := len(batch) - 1; k >= 0; k-- {
		log := batch[k]
		order, pos, mid := p.lists(log.w, log.out)
		*mid--
		p.swap(order, pos, log.posA, log.posB)
	}
}

// OutBefore returns w's out-neighbours already pushed (read-only alias).
func (p *Partition) OutBefore(w int) []int { return p.outOrder[w][:p.outMid[w]] }

// OutAfter returns w's out-neighbours not yet pushed (read-only alias).
func (p *Partition) OutAfter(w int) []int { return p.outOrder[w][p.outMid[w]:] }

// InBefore returns w's in-neighbours already pushed (read-only alias).
func (p *Partition) InBefore(w int) []int { return p.inOrder[w][:p.inMid[w]] }

// InAfter returns w's in-neighbours not yet pushed (read-only alias).
func (p *Partition) InAfter(w int) []int { return p.inOrder[w][p.inMid[w]:] }
