// Package graph - core adjacency-list type and accessors.
//
// Contract:
//   - Vertices are the integers 0..n-1, fixed at construction.
//   - Edges are undirected, unweighted, loop-free, and unique.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - New: O(n) allocation.
//   - AddEdge/HasEdge: O(deg) uniqueness scan.
//   - Neighbors: O(deg) copy; Adjacency: O(V+E) deep copy.
package graph

// Graph is an undirected simple graph over vertices 0..n-1.
// The zero value is unusable; construct via New or a generator.
type Graph struct {
	adj   [][]int // adj[u] lists the neighbors of u in insertion order
	edges int     // number of undirected edges
}

// New returns an edgeless graph on n vertices. n must be ≥ 1.
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	return &Graph{adj: make([][]int, n)}, nil
}

// VertexCount reports the number of vertices n.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount reports the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge inserts the undirected edge u–v.
// Errors: ErrVertexRange, ErrLoop, ErrDuplicateEdge.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return ErrLoop
	}

	// Uniqueness scan over the smaller endpoint list.
	var probe, other = u, v
	if len(g.adj[v]) < len(g.adj[u]) {
		probe, other = v, u
	}
	var i int
	for i = 0; i < len(g.adj[probe]); i++ {
		if g.adj[probe][i] == other {
			return ErrDuplicateEdge
		}
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether the undirected edge u–v is present.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkVertex(u); err != nil {
		return false, err
	}
	if err := g.checkVertex(v); err != nil {
		return false, err
	}

	var i int
	for i = 0; i < len(g.adj[u]); i++ {
		if g.adj[u][i] == v {
			return true, nil
		}
	}

	return false, nil
}

// Degree reports the number of neighbors of u.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// Neighbors returns a copy of u's neighbor list in insertion order.
// The copy never aliases internal storage.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Adjacency returns a deep copy of the full adjacency structure,
// indexed by vertex. Downstream models may mutate it freely.
func (g *Graph) Adjacency() [][]int {
	cp := make([][]int, len(g.adj))
	var u int
	for u = range g.adj {
		cp[u] = make([]int, len(g.adj[u]))
		copy(cp[u], g.adj[u])
	}

	return cp
}

// checkVertex validates u ∈ [0, n).
func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= len(g.adj) {
		return ErrVertexRange
	}

	return nil
}
