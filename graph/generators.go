// Package graph - deterministic generators for standard topologies.
//
// Contract:
//   - Every generator validates its parameter domain up front (fail fast).
//   - Vertex numbering and edge emission order are deterministic; RandomGnp
//     additionally depends only on the supplied seed (seed==0 ⇒ fixed default).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Path/Cycle: O(n). Complete: O(n²). CompleteBipartite: O(n1·n2).
//   - RandomGnp: O(n²) coin flips.
package graph

import "math/rand"

// defaultGenSeed is the fixed seed used by RandomGnp when the caller passes 0.
const defaultGenSeed int64 = 1

// Minimum orders per shape (no magic numbers at call sites).
const (
	minPathNodes      = 1
	minCycleNodes     = 3
	minCompleteNodes  = 1
	minPartitionNodes = 1
)

// Path returns the path graph P_n: edges i–(i+1) for i=0..n-2.
func Path(n int) (*Graph, error) {
	if n < minPathNodes {
		return nil, ErrTooFewVertices
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle returns the cycle graph C_n: a path closed by the edge (n-1)–0.
// n must be ≥ 3 so the result stays simple.
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, ErrTooFewVertices
	}
	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete returns the complete graph K_n.
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewVertices
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// CompleteBipartite returns K_{n1,n2}: left vertices 0..n1-1, right vertices
// n1..n1+n2-1, every cross pair joined.
func CompleteBipartite(n1, n2 int) (*Graph, error) {
	if n1 < minPartitionNodes || n2 < minPartitionNodes {
		return nil, ErrTooFewVertices
	}
	g, err := New(n1 + n2)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n1; i++ {
		for j = 0; j < n2; j++ {
			if err = g.AddEdge(i, n1+j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomGnp returns an Erdős–Rényi G(n,p) graph: each of the C(n,2) possible
// edges is present independently with probability p. Deterministic for a
// fixed seed; seed==0 selects the fixed default stream.
func RandomGnp(n int, p float64, seed int64) (*Graph, error) {
	if n < minPathNodes {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrProbRange
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	s := seed
	if s == 0 {
		s = defaultGenSeed
	}
	rng := rand.New(rand.NewSource(s))

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
