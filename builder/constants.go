package builder

// Method name constants used to prefix errors with the constructor name.
const (
	methodComplete          = "Complete"
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodTree              = "Tree"
	methodCompleteBipartite = "CompleteBipartite"
	methodMycielski         = "Mycielski"
	methodLadderDiagonal    = "LadderDiagonal"
	methodGrid              = "Grid"
	methodRandomEdges       = "RandomEdges"
	methodByKind            = "ByKind"
)

// Minimum sizes.
const (
	// MinCompleteNodes allows K_1 (a single isolated vertex).
	MinCompleteNodes = 1
	// MinCycleNodes is the smallest ring without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes allows the single-vertex path.
	MinPathNodes = 1
	// MinStarNodes is one centre plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes is a triangle rim plus the hub.
	MinWheelNodes = 4
	// MinTreeNodes allows the single-vertex tree.
	MinTreeNodes = 1
	// MinPartition is the smallest side of K_{n1,n2}.
	MinPartition = 1
	// MinMycielskiOrder is M_2 = K_2.
	MinMycielskiOrder = 2
	// MinLadderNodes is the smallest ladder-diagonal with an edge.
	MinLadderNodes = 2
	// MinGridDim is the smallest grid side.
	MinGridDim = 1
	// MinRandomNodes allows an isolated vertex.
	MinRandomNodes = 1
)
