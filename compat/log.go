// File: log.go
// Role: log-replay Matrix. A single live frame plus a stack of cleared
// cell indices; Advance records a checkpoint, Revert replays undos back
// to it. O(changes) per Revert instead of Dense's O(m*n) per Advance.
package compat

// Log is a log-replay compatibility matrix.
type Log struct {
	rows, cols int
	cur        [][]bool
	counts     []int

	cleared     []int // encodes i*cols+j, pushed once per true->false transition
	checkpoints []int // log length recorded at each Advance
}

var _ Matrix = (*Log)(nil)

// NewLog allocates an all-clear rows×cols Log matrix.
func NewLog(rows, cols int) *Log {
	cur := make([][]bool, rows)
	for i := range cur {
		cur[i] = make([]bool, cols)
	}

	return &Log{
		rows:   rows,
		cols:   cols,
		cur:    cur,
		counts: make([]int, rows),
	}
}

func (l *Log) Rows() int { return l.rows }
func (l *Log) Cols() int { return l.cols }

func (l *Log) Get(i, j int) bool { return l.cur[i][j] }

// Set marks M(i,j) live without logging the change: Set is only ever
// used to build up the initial frame before the first Advance, or to
// restore a cell Revert will already have undone, never to introduce a
// cell that a later Revert must clear again.
func (l *Log) Set(i, j int) {
	if !l.cur[i][j] {
		l.cur[i][j] = true
		l.counts[i]++
	}
}

func (l *Log) Unset(i, j int) {
	if l.cur[i][j] {
		l.cur[i][j] = false
		l.counts[i]--
		l.cleared = append(l.cleared, i*l.cols+j)
	}
}

func (l *Log) Advance() {
	l.checkpoints = append(l.checkpoints, len(l.cleared))
}

func (l *Log) Revert() {
	if len(l.checkpoints) == 0 {
		panic(ErrUnbalancedRevert)
	}
	top := len(l.checkpoints) - 1
	checkpoint := l.checkpoints[top]
	l.checkpoints = l.checkpoints[:top]

	for k := len(l.cleared) - 1; k >= checkpoint; k-- {
		idx := l.cleared[k]
		i, j := idx/l.cols, idx%l.cols
		l.cur[i][j] = true
		l.counts[i]++
	}
	l.cleared = l.cleared[:checkpoint]
}

func (l *Log) NumCandidates(i int) int { return l.counts[i] }

func (l *Log) Possible(i int) bool { return l.counts[i] > 0 }

func (l *Log) Row(i int) []int {
	out := make([]int, 0, l.counts[i])
	for j, live := range l.cur[i] {
		if live {
			out = append(out, j)
		}
	}

	return out
}
