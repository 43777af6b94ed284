package partition_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/graph"
	"github.com/katalvlaran/gramo/internal/partition"
)

// path3 builds 0->1->2.
func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)

	return g
}

func sorted(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

func TestInitiallyFullyAfter(t *testing.T) {
	g := path3(t)
	p := partition.New(g)

	require.Empty(t, p.OutBefore(0))
	require.Equal(t, []int{1}, p.OutAfter(0))
	require.Empty(t, p.InBefore(1))
	require.Equal(t, []int{0}, p.InAfter(1))
}

func TestPushMovesAcrossEndpoints(t *testing.T) {
	g := path3(t)
	p := partition.New(g)

	p.Push(1)

	// 1 is an out-neighbour of 0: pushing 1 moves it to 0's out-before side.
	require.Equal(t, []int{1}, p.OutBefore(0))
	require.Empty(t, p.OutAfter(0))

	// 1 is an in-neighbour of 2: pushing 1 moves it to 2's in-before side.
	require.Equal(t, []int{1}, p.InBefore(2))
	require.Empty(t, p.InAfter(2))
}

func TestPopReversesPush(t *testing.T) {
	g := path3(t)
	p := partition.New(g)

	beforeOut0 := sorted(append(p.OutBefore(0), p.OutAfter(0)...))

	p.Push(0)
	p.Push(1)
	p.Push(2)

	p.Pop()
	p.Pop()
	p.Pop()

	require.Empty(t, p.OutBefore(0))
	require.Equal(t, beforeOut0, sorted(p.OutAfter(0)))
	require.Empty(t, p.InBefore(1))
}

func TestNestedPushPopIdentity(t *testing.T) {
	g := path3(t)
	p := partition.New(g)

	p.Push(1)
	mid := sorted(append(append([]int{}, p.OutBefore(0)...), p.OutAfter(0)...))

	p.Push(0)
	p.Push(2)
	p.Pop()
	p.Pop()

	require.Equal(t, mid, sorted(append(append([]int{}, p.OutBefore(0)...), p.OutAfter(0)...)))
	require.Equal(t, []int{1}, p.OutBefore(0))
}
