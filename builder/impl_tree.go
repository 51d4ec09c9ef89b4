package builder

// Tree returns a Constructor that builds the complete binary tree shape on n
// vertices: the parent of vertex i (i ≥ 2) is i/2. Edges are emitted as
// (i/2, i) for i=2..n. n ≥ 1.
func Tree(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if err := validateMin(methodTree, "n", n, MinTreeNodes); err != nil {
			return err
		}

		off := c.block(n)
		for i := 2; i <= n; i++ {
			c.edge(off+i/2, off+i)
		}

		return nil
	}
}
