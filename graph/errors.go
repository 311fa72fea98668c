package graph

import "errors"

var (
	// ErrTooFewVertices indicates a graph or generator order below the minimum.
	ErrTooFewVertices = errors.New("graph: too few vertices")
	// ErrVertexRange indicates a vertex index outside [0, VertexCount).
	ErrVertexRange = errors.New("graph: vertex index out of range")
	// ErrLoop indicates a self-loop, which simple graphs forbid.
	ErrLoop = errors.New("graph: self-loops not allowed")
	// ErrDuplicateEdge indicates the edge is already present.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
	// ErrProbRange indicates an edge probability outside [0,1].
	ErrProbRange = errors.New("graph: edge probability out of range")
)
