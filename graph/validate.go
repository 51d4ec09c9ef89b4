package graph

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateColouring checks colouring against g and reports every violation:
// a length other than V, a colour outside [1, MaxColours(g)], and each edge
// whose endpoints share a colour. Violations are combined with multierr, so
// errors.Is works for each sentinel and multierr.Errors lists them.
func ValidateColouring(g *Graph, colouring []int) error {
	if len(colouring) != g.vertices {
		return fmt.Errorf("ValidateColouring: got %d colours for V=%d: %w", len(colouring), g.vertices, ErrColouringLength)
	}

	var err error
	maxC := MaxColours(g)
	for i, c := range colouring {
		if c < 1 || c > maxC {
			err = multierr.Append(err, fmt.Errorf("vertex %d colour %d not in [1,%d]: %w", i+1, c, maxC, ErrColourOutOfRange))
		}
	}
	for _, e := range g.edges {
		if colouring[e.U-1] == colouring[e.V-1] {
			err = multierr.Append(err, fmt.Errorf("edge (%d,%d) colour %d: %w", e.U, e.V, colouring[e.U-1], ErrConflict))
		}
	}

	return err
}

// ChromaticSum returns the sum of all colours.
func ChromaticSum(colouring []int) int {
	sum := 0
	for _, c := range colouring {
		sum += c
	}
	return sum
}
