package builder

import "fmt"

// validateMin ensures that got ≥ min for the named constructor parameter.
// Returns "<method>: <param>=<got> < min=<min>: ErrTooFewVertices" otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validatePartition checks that both sides of a bipartition are non-empty.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartition || n2 < MinPartition {
		return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
			method, MinPartition, n1, n2, ErrTooFewVertices)
	}

	return nil
}

// maxSimpleEdges is n(n-1)/2.
func maxSimpleEdges(n int) int {
	return n * (n - 1) / 2
}
