// Package graphio reads and writes graphs and colourings in the plain text
// format used by the sum-colouring tools.
//
// Graph format: a header "V E" followed by E pairs "u v". Tokens are
// whitespace-separated, so line breaks and blank lines are insignificant.
// Colouring format: one "vertex colour" line per vertex, vertices ascending.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lychanl/SumColouring/graph"
)

var (
	// ErrMalformedHeader indicates a missing or non-numeric "V E" header.
	ErrMalformedHeader = errors.New("graphio: malformed header")

	// ErrMalformedEdge indicates a non-numeric edge endpoint.
	ErrMalformedEdge = errors.New("graphio: malformed edge")

	// ErrEdgeCount indicates fewer edge pairs than the header announced.
	ErrEdgeCount = errors.New("graphio: edge count mismatch")

	// ErrMalformedColouring indicates a bad or incomplete colouring listing.
	ErrMalformedColouring = errors.New("graphio: malformed colouring")
)

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns the next integer; ok is false at end of input.
func (t *tokenReader) next() (n int, ok bool, err error) {
	if !t.sc.Scan() {
		return 0, false, t.sc.Err()
	}
	n, err = strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

// ReadGraph parses a graph. Duplicate edges in either orientation are merged;
// self-loops and out-of-range endpoints surface the graph package sentinels.
// Tokens after the announced E pairs are ignored.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	const method = "ReadGraph"
	tr := newTokenReader(r)

	header := [2]int{}
	for k := range header {
		n, ok, err := tr.next()
		if err != nil || !ok {
			return nil, fmt.Errorf("%s: %w", method, joinCause(ErrMalformedHeader, err))
		}
		header[k] = n
	}
	v, e := header[0], header[1]
	if e < 0 {
		return nil, fmt.Errorf("%s: E=%d: %w", method, e, ErrMalformedHeader)
	}

	edges := make([]graph.Edge, 0, e)
	for i := 0; i < e; i++ {
		var pair [2]int
		for k := range pair {
			n, ok, err := tr.next()
			if err != nil {
				return nil, fmt.Errorf("%s: edge %d: %w", method, i+1, joinCause(ErrMalformedEdge, err))
			}
			if !ok {
				return nil, fmt.Errorf("%s: read %d of %d edges: %w", method, i, e, ErrEdgeCount)
			}
			pair[k] = n
		}
		edges = append(edges, graph.Edge{U: pair[0], V: pair[1]})
	}

	g, err := graph.NewGraph(v, edges...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return g, nil
}

// WriteGraph writes g in the format accepted by ReadGraph, one edge per line.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Vertices(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}
	return bw.Flush()
}

// WriteColouring writes one "vertex colour" line per vertex.
func WriteColouring(w io.Writer, colouring []int) error {
	bw := bufio.NewWriter(w)
	for i, c := range colouring {
		fmt.Fprintf(bw, "%d %d\n", i+1, c)
	}
	return bw.Flush()
}

// ReadColouring parses "vertex colour" pairs in any order. Vertices must be
// exactly 1..n, each listed once.
func ReadColouring(r io.Reader) ([]int, error) {
	const method = "ReadColouring"
	tr := newTokenReader(r)

	assigned := make(map[int]int)
	for {
		v, ok, err := tr.next()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, joinCause(ErrMalformedColouring, err))
		}
		if !ok {
			break
		}
		c, ok, err := tr.next()
		if err != nil || !ok {
			return nil, fmt.Errorf("%s: vertex %d has no colour: %w", method, v, joinCause(ErrMalformedColouring, err))
		}
		if _, dup := assigned[v]; dup {
			return nil, fmt.Errorf("%s: vertex %d listed twice: %w", method, v, ErrMalformedColouring)
		}
		assigned[v] = c
	}

	out := make([]int, len(assigned))
	for v, c := range assigned {
		if v < 1 || v > len(out) {
			return nil, fmt.Errorf("%s: vertex %d outside 1..%d: %w", method, v, len(out), ErrMalformedColouring)
		}
		out[v-1] = c
	}
	return out, nil
}

// joinCause keeps the sentinel matchable while preserving a parse error.
func joinCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}
