package builder

// LadderDiagonal returns a Constructor for the ladder-diagonal family: vertex
// i is joined to i+2 for i=1..n-2, and vertex n-1 to n. Edges are emitted in
// order of their lower endpoint. n ≥ 2.
func LadderDiagonal(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodLadderDiagonal, "n", n, MinLadderNodes); err != nil {
			return err
		}

		off := c.block(n)
		for i := 1; i < n; i++ {
			j := i + 2
			if j > n {
				j = i + 1
			}
			c.edge(off+i, off+j)
		}

		return nil
	}
}
