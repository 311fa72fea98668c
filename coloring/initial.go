// Package coloring - initial assignment constructors.
//
// Contract:
//   - RandomAssignment is deterministic for a fixed seed (seed==0 ⇒ fixed
//     default stream, matching the toolkit-wide RNG policy).
//   - Greedy is fully deterministic: vertices in index order, colors first-fit.
//     When the palette is exhausted on a vertex it falls back to the color
//     with the fewest conflicting neighbors (ties to the smallest color), so
//     it always emits a complete assignment even for k below the chromatic
//     number — exactly what repair engines expect as input.
//   - Returns only sentinel errors; never panics at runtime.
package coloring

import (
	"math/rand"

	"github.com/katalvlaran/kcolor/graph"
)

// defaultSeed is the fixed stream used when callers pass seed==0.
const defaultSeed int64 = 1

// RandomAssignment returns n colors drawn uniformly from [1,k].
//
// Complexity: O(n).
func RandomAssignment(n, k int, seed int64) (Assignment, error) {
	if n < 1 {
		return nil, ErrAssignmentLength
	}
	if k < 1 {
		return nil, ErrTooFewColors
	}

	s := seed
	if s == 0 {
		s = defaultSeed
	}
	rng := rand.New(rand.NewSource(s))

	out := make(Assignment, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = 1 + rng.Intn(k)
	}

	return out, nil
}

// Greedy returns a first-fit coloring of g with palette [1,k].
//
// Complexity: O(V·k + E).
func Greedy(g *graph.Graph, k int) (Assignment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, ErrTooFewColors
	}

	n := g.VertexCount()
	adj := g.Adjacency()
	out := make(Assignment, n)

	// used[c] == v+1 marks color c as taken by a neighbor of v; the epoch
	// trick avoids clearing the slice between vertices.
	used := make([]int, k+1)

	var (
		v, i, c int
		w       int // neighbor index
	)
	for v = 0; v < n; v++ {
		row := adj[v]
		for i = 0; i < len(row); i++ {
			w = row[i]
			if out[w] != 0 { // neighbor already colored
				used[out[w]] = v + 1
			}
		}

		// First-fit over the palette.
		out[v] = 0
		for c = 1; c <= k; c++ {
			if used[c] != v+1 {
				out[v] = c
				break
			}
		}
		if out[v] == 0 {
			// Palette exhausted: take the least-conflicting color.
			out[v] = leastConflicting(adj, out, v, k)
		}
	}

	return out, nil
}

// leastConflicting returns the color in [1,k] shared with the fewest
// already-colored neighbors of v (ties to the smallest color).
func leastConflicting(adj [][]int, colors Assignment, v, k int) int {
	counts := make([]int, k+1)
	var i, w int
	for i = 0; i < len(adj[v]); i++ {
		w = adj[v][i]
		if colors[w] != 0 {
			counts[colors[w]]++
		}
	}

	bestColor, bestCount := 1, counts[1]
	var c int
	for c = 2; c <= k; c++ {
		if counts[c] < bestCount {
			bestColor, bestCount = c, counts[c]
		}
	}

	return bestColor
}
