// Package tabucol - the forbidden-move memory.
//
// Contract:
//   - until[v·k+(c-1)] holds the earliest iteration at which assigning color
//     c to vertex v is permitted again; the zero value permits everything.
//   - markColoring forbids each vertex's *current* color until iter+tenure,
//     so the assignment just departed from cannot be immediately reversed.
//   - A tenure of 0 is valid and leaves no memory effect.
//
// Complexity: forbidden/refresh O(1); markColoring O(V).
package tabucol

// tabuMemory is the per-(vertex,color) earliest-allowed-iteration table.
type tabuMemory struct {
	k     int
	until []int // linearized [v*k + (c-1)]
}

// newTabuMemory returns an all-permissive table for n vertices and k colors.
func newTabuMemory(n, k int) *tabuMemory {
	return &tabuMemory{k: k, until: make([]int, n*k)}
}

// forbidden reports whether assigning color c to vertex v is tabu at iter.
func (t *tabuMemory) forbidden(v, c, iter int) bool {
	return iter < t.until[v*t.k+c-1]
}

// refresh sets the earliest-allowed iteration of the (v,c) pairing.
func (t *tabuMemory) refresh(v, c, until int) {
	t.until[v*t.k+c-1] = until
}

// markColoring forbids, for every vertex, its current color until iter+tenure.
// One pass touches each pair at most once, so entries only move forward
// within a single call.
func (t *tabuMemory) markColoring(colors []int, iter, tenure int) {
	var v int
	for v = 0; v < len(colors); v++ {
		t.refresh(v, colors[v], iter+tenure)
	}
}
