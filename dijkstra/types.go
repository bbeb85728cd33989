package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra trace generator.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified start vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrWeightOverflow indicates edge weights whose total is not a finite
	// float64, so a path distance could round to +Inf.
	ErrWeightOverflow = errors.New("dijkstra: total edge weight overflows float64")
)
