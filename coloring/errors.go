package coloring

import "errors"

var (
	// ErrNilGraph indicates a nil graph was handed to a constructor.
	ErrNilGraph = errors.New("coloring: nil graph")
	// ErrTooFewColors indicates a palette size below one.
	ErrTooFewColors = errors.New("coloring: color count must be at least 1")
	// ErrAssignmentLength indicates len(assignment) != VertexCount.
	ErrAssignmentLength = errors.New("coloring: assignment length mismatch")
	// ErrColorRange indicates an assignment entry outside [1, colorCount].
	ErrColorRange = errors.New("coloring: color out of range")
)
