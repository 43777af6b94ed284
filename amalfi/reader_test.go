package amalfi_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/amalfi"
)

func encode(t *testing.T, values ...uint16) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	for _, v := range values {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, v))
	}

	return buf
}

func TestReadGraphPathOfThree(t *testing.T) {
	// n=3; vertex0: deg1 -> 1; vertex1: deg1 -> 2; vertex2: deg0.
	buf := encode(t, 3, 1, 1, 1, 2, 0)

	g, err := amalfi.ReadGraph(buf)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.True(t, g.Edge(0, 1))
	require.True(t, g.Edge(1, 2))
	require.False(t, g.Edge(2, 0))
}

func TestReadGraphShortRead(t *testing.T) {
	buf := encode(t, 3, 1) // declares a neighbour but omits it
	_, err := amalfi.ReadGraph(buf)
	require.ErrorIs(t, err, amalfi.ErrShortRead)
}

func TestReadGraphTargetOutOfRange(t *testing.T) {
	buf := encode(t, 2, 1, 5) // only 2 vertices, target 5 invalid
	_, err := amalfi.ReadGraph(buf)
	require.ErrorIs(t, err, amalfi.ErrTargetOutOfRange)
}
