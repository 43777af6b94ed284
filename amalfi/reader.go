package amalfi

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/gramo/graph"
)

// reader buffers little-endian uint16 reads off an io.Reader.
type reader struct {
	r   *bufio.Reader
	buf [2]byte
}

func newReader(r io.Reader) *reader {
	return &reader{r: bufio.NewReaderSize(r, 64*1024)}
}

func (rd *reader) readUint16() (uint16, error) {
	if _, err := io.ReadFull(rd.r, rd.buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShortRead, err)
	}

	return binary.LittleEndian.Uint16(rd.buf[:]), nil
}

// ReadGraph parses one AMALFI-format graph off r: a uint16 vertex
// count, then for each vertex its out-degree followed by that many
// uint16 target indices.
func ReadGraph(r io.Reader, opts ...graph.Option) (*graph.Graph, error) {
	rd := newReader(r)

	n, err := rd.readUint16()
	if err != nil {
		return nil, fmt.Errorf("amalfi: reading header: %w", err)
	}

	outAdj := make([][]int, n)
	for i := 0; i < int(n); i++ {
		deg, err := rd.readUint16()
		if err != nil {
			return nil, fmt.Errorf("amalfi: reading degree of vertex %d: %w", i, err)
		}

		nbrs := make([]int, deg)
		for k := 0; k < int(deg); k++ {
			t, err := rd.readUint16()
			if err != nil {
				return nil, fmt.Errorf("amalfi: reading neighbour %d of vertex %d: %w", k, i, err)
			}
			if int(t) >= int(n) {
				return nil, fmt.Errorf("%w: vertex %d names target %d, have %d vertices", ErrTargetOutOfRange, i, t, n)
			}
			nbrs[k] = int(t)
		}
		outAdj[i] = nbrs
	}

	return graph.NewFromOutAdjacency(outAdj, opts...)
}
